package guestlist

import "sync/atomic"

// Guest is a single roster entry. ID is unique across the roster and never
// changes once assigned; Confirmed and RSVP start false.
type Guest struct {
	ID        int64
	Name      string
	Email     string
	Confirmed bool
	RSVP      bool
}

// IDAllocator produces roster ids. Implementations must return values that
// are unique and monotonically increasing for the life of the process; two
// calls must never collide, however close together they happen.
type IDAllocator interface {
	Next() int64
}

// CounterAllocator is the default IDAllocator: an atomic counter. Unlike
// wall-clock ids, consecutive allocations can never collide.
type CounterAllocator struct {
	last atomic.Int64
}

// NewCounterAllocator returns an allocator whose first id is start+1.
func NewCounterAllocator(start int64) *CounterAllocator {
	a := &CounterAllocator{}
	a.last.Store(start)
	return a
}

func (a *CounterAllocator) Next() int64 {
	return a.last.Add(1)
}

// DemoGuests returns the showcase seed roster.
func DemoGuests() []Guest {
	return []Guest{
		{Name: "Sarah Johnson", Email: "sarah.j@example.com"},
		{Name: "Michael Chen", Email: "mchen@example.com", Confirmed: true, RSVP: true},
		{Name: "Emily Davis", Email: "emily.d@example.com", RSVP: true},
	}
}
