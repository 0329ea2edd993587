// Package guestlist implements the event roster: an in-memory, insertion-
// ordered collection of guests with derived attendance statistics.
//
// The Engine owns the collection exclusively. Mutations (add, update, remove,
// confirmation and RSVP toggles) are validated at the creation boundary and
// published as events; reads hand out copies, so captured snapshots are
// immune to later mutations. Statistics are a pure projection recomputed on
// every read rather than cached state, which rules out invalidation bugs by
// construction.
package guestlist
