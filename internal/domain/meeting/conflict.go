package meeting

import (
	"sort"
	"strings"
)

// Booking is the part of a stored request the conflict checker looks at.
type Booking struct {
	RequestID int64
	Slot      Slot
	Status    Status
}

// FindConflicts returns the approved bookings that collide with proposed.
// Bookings for another room or day, unapproved bookings and the request
// identified by exclude are ignored. Pass exclude = 0 for a new request.
func FindConflicts(proposed Slot, bookings []Booking, exclude int64) []Booking {
	var out []Booking
	for _, b := range bookings {
		if !occupies(b, proposed, exclude) {
			continue
		}
		if b.Slot.Span.Overlaps(proposed.Span) {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out
}

// Availability is the answer to "can this room be used then".
type Availability struct {
	Booked      bool
	BookedTimes []string
}

// CheckAvailability reports whether proposed collides with an approved
// booking. BookedTimes always lists every approved range for the room and
// day, which is what the request form shows.
func CheckAvailability(proposed Slot, bookings []Booking, exclude int64) Availability {
	return Availability{
		Booked:      len(FindConflicts(proposed, bookings, exclude)) > 0,
		BookedTimes: BookedTimes(proposed.Room, proposed.Date, bookings, exclude),
	}
}

func BookedTimes(room string, date CalendarDate, bookings []Booking, exclude int64) []string {
	probe := Slot{Room: room, Date: date}
	var taken []Booking
	for _, b := range bookings {
		if occupies(b, probe, exclude) {
			taken = append(taken, b)
		}
	}
	sortByStart(taken)

	times := make([]string, 0, len(taken))
	for _, b := range taken {
		times = append(times, b.Slot.Span.String())
	}
	return times
}

// EnsureFree returns ErrSlotTaken naming the colliding ranges, or nil.
func EnsureFree(proposed Slot, bookings []Booking, exclude int64) error {
	conflicts := FindConflicts(proposed, bookings, exclude)
	if len(conflicts) == 0 {
		return nil
	}
	ranges := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		ranges = append(ranges, c.Slot.Span.String())
	}
	return &SlotTakenError{Room: proposed.Room, Date: proposed.Date, Ranges: ranges}
}

// SlotTakenError matches ErrSlotTaken.
type SlotTakenError struct {
	Room   string
	Date   CalendarDate
	Ranges []string
}

func (e *SlotTakenError) Error() string {
	return ErrSlotTaken.Error() + ": " + e.Room + " on " + e.Date.String() + " (" + strings.Join(e.Ranges, ", ") + ")"
}

func (e *SlotTakenError) Unwrap() error { return ErrSlotTaken }

func occupies(b Booking, probe Slot, exclude int64) bool {
	if exclude != 0 && b.RequestID == exclude {
		return false
	}
	return b.Status == StatusApproved &&
		b.Slot.Room == probe.Room &&
		b.Slot.Date.Equal(probe.Date)
}

func sortByStart(bs []Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		return bs[i].Slot.Span.Start().Minutes() < bs[j].Slot.Span.Start().Minutes()
	})
}
