package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	dateLayout    = "2006-01-02"
)

// Date is a calendar day without a time of day.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return Date{Time: t}, nil
}

// DateOf truncates an instant to its UTC calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SlotTime is the start of a slot in minutes after midnight.
type SlotTime int

func ParseSlotTime(s string) (SlotTime, error) {
	m, err := ParseMinuteOfDay(s)
	if err != nil || m == MinutesPerDay {
		return 0, fmt.Errorf("%w: invalid slot %q, expected HH:MM", ErrValidation, s)
	}
	return SlotTime(m), nil
}

// ParseMinuteOfDay parses "HH:MM" into minutes after midnight. "24:00" is accepted as end of day.
func ParseMinuteOfDay(s string) (int, error) {
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time of day %q, expected HH:MM", ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (s SlotTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *SlotTime) UnmarshalJSON(b []byte) error {
	parsed, err := ParseSlotTime(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s SlotTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(s)/60, int(s)%60)
}

// StartsAt returns the instant the slot begins on date, reading the slot as wall clock time in loc.
func (s SlotTime) StartsAt(date Date, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(s)/60, int(s)%60, 0, 0, loc)
}

// GenerateSlots lists every slot start inside the pitch's operating window.
func GenerateSlots(p *Pitch) []SlotTime {
	if p.SlotInterval <= 0 {
		return nil
	}
	res := make([]SlotTime, 0, (p.ClosesAt-p.OpensAt)/p.SlotInterval)
	for m := p.OpensAt; m+p.SlotInterval <= p.ClosesAt; m += p.SlotInterval {
		res = append(res, SlotTime(m))
	}
	return res
}

// ValidateSlots checks that the requested slots are non-empty, distinct and quantized
// to the pitch's interval inside its operating window. The result is sorted.
func ValidateSlots(p *Pitch, slots []SlotTime) ([]SlotTime, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}

	sorted := slices.Clone(slots)
	slices.Sort(sorted)
	for i, s := range sorted {
		if i > 0 && sorted[i-1] == s {
			return nil, fmt.Errorf("%w: slot %s requested twice", ErrValidation, s)
		}
		if int(s) < p.OpensAt || int(s)+p.SlotInterval > p.ClosesAt {
			return nil, fmt.Errorf("%w: slot %s is outside operating hours", ErrValidation, s)
		}
		if (int(s)-p.OpensAt)%p.SlotInterval != 0 {
			return nil, fmt.Errorf("%w: slot %s is not aligned to %d minute slots", ErrValidation, s, p.SlotInterval)
		}
	}

	return sorted, nil
}
