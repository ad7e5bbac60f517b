package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Clock errors
var (
	ErrInvalidClock = errors.New("invalid clock value, expected HH:MM")
	ErrInvalidRange = errors.New("invalid time range")
)

// clockPattern matches a 24-hour HH:MM value (00:00 - 23:59)
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Clock is a time of day expressed in minutes since midnight.
type Clock int

// ParseClock parses a strict HH:MM 24-hour value into a Clock.
func ParseClock(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	// The pattern already guarantees two-digit groups in range
	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minutes := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return Clock(hours*60 + minutes), nil
}

// IsClock reports whether s is a well-formed HH:MM value.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// String renders the clock back as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Interval is a half-open [Start, End) time range within a single day.
type Interval struct {
	Start Clock
	End   Clock
}

// NewInterval builds an interval from HH:MM endpoints. The start must be
// strictly before the end.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, s, e)
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two intervals share at least one instant.
// Half-open semantics: back-to-back slots (10:00-11:00, 11:00-12:00) do not
// overlap. The test is the canonical double inequality, so full containment
// is detected even when no endpoints coincide.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains reports whether o lies entirely within i.
func (i Interval) Contains(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

// String renders the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// ParseSlotRange parses a "HH:MM-HH:MM" query value into an interval.
func ParseSlotRange(s string) (Interval, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q, expected HH:MM-HH:MM", ErrInvalidRange, s)
	}
	return NewInterval(strings.TrimSpace(lo), strings.TrimSpace(hi))
}
