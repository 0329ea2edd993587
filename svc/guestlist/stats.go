package guestlist

// Stats are the derived roster statistics. They are never stored: every read
// recomputes them from the roster's current contents, so Confirmed+Pending
// always equals Total.
type Stats struct {
	Total     int
	Confirmed int
	Pending   int
	RSVP      int
}

// ComputeStats projects the statistics from a roster snapshot.
func ComputeStats(guests []Guest) Stats {
	s := Stats{Total: len(guests)}
	for _, g := range guests {
		if g.Confirmed {
			s.Confirmed++
		}
		if g.RSVP {
			s.RSVP++
		}
	}
	s.Pending = s.Total - s.Confirmed
	return s
}
