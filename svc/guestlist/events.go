package guestlist

// EventKind identifies the roster mutation that produced an Event.
type EventKind string

const (
	EventAdded            EventKind = "added"
	EventUpdated          EventKind = "updated"
	EventRemoved          EventKind = "removed"
	EventConfirmedToggled EventKind = "confirmed_toggled"
	EventRSVPToggled      EventKind = "rsvp_toggled"
)

// Event is broadcast to observers after each successful roster mutation.
// Guest is the affected record as it was after the operation (for removals,
// as it was just before).
type Event struct {
	Kind  EventKind
	Guest Guest
}
