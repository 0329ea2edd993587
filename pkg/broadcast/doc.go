// Package broadcast provides generic in-memory pub/sub for pushing state
// changes to interested observers.
//
// The core engines own their data exclusively; a presentation layer observes
// them by subscribing to a broadcaster and reacting to mutation events:
//
//	bus := broadcast.NewMemoryBroadcaster[guestlist.Event](16)
//	sub := bus.Subscribe(ctx)
//	for ev := range sub.Receive() {
//	    // re-render
//	}
//
// Delivery is best-effort: a subscriber that stops draining its channel is
// dropped rather than allowed to block publishers.
package broadcast
