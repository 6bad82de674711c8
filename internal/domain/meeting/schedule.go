package meeting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// WallClock is a time of day without a zone, kept as minutes since midnight.
type WallClock struct {
	minutes int
}

var wallClockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseWallClock accepts "HH:MM" and the "HH:MM:SS" form PostgreSQL emits.
// Seconds are dropped.
func ParseWallClock(s string) (WallClock, error) {
	m := wallClockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return WallClock{}, ErrInvalidTime
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 23 || mi > 59 {
		return WallClock{}, ErrInvalidTime
	}
	if m[3] != "" {
		if sec, _ := strconv.Atoi(m[3]); sec > 59 {
			return WallClock{}, ErrInvalidTime
		}
	}
	return WallClock{minutes: h*60 + mi}, nil
}

func WallClockFromMinutes(minutes int) (WallClock, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return WallClock{}, ErrInvalidTime
	}
	return WallClock{minutes: minutes}, nil
}

func MustWallClock(s string) WallClock {
	w, err := ParseWallClock(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w WallClock) Minutes() int { return w.minutes }

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.minutes/60, w.minutes%60)
}

// CalendarDate is a day on the calendar, stored as midnight UTC.
type CalendarDate struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, ErrInvalidDate
	}
	return CalendarDate{t: t}, nil
}

// NewCalendarDate keeps the year, month and day of t as seen in t's location.
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func MustCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d CalendarDate) Time() time.Time { return d.t }
func (d CalendarDate) IsZero() bool    { return d.t.IsZero() }
func (d CalendarDate) String() string  { return d.t.Format(dateLayout) }

func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.t.Equal(o.t)
}

var hariNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// Hari returns the Indonesian weekday name stored alongside the date.
func (d CalendarDate) Hari() string {
	return hariNames[d.t.Weekday()]
}

// TimeRange is the half-open interval [start, end).
type TimeRange struct {
	start WallClock
	end   WallClock
}

func NewTimeRange(start, end WallClock) (TimeRange, error) {
	if end.minutes <= start.minutes {
		return TimeRange{}, ErrEndNotAfterStart
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseWallClock(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseWallClock(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() WallClock { return r.start }
func (r TimeRange) End() WallClock   { return r.end }

// Overlaps uses strict inequalities, so ranges that only touch do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.start.minutes < o.end.minutes && r.end.minutes > o.start.minutes
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}

// Slot is the room occupancy a request asks for.
type Slot struct {
	Room string
	Date CalendarDate
	Span TimeRange
}

func (s Slot) Equal(o Slot) bool {
	return s.Room == o.Room && s.Date.Equal(o.Date) && s.Span == o.Span
}
