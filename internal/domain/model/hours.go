package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday is a calendar day with Monday as the first day of the week.
type Weekday int

// Days of the week in calendar order.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Week lists the seven days in calendar order.
var Week = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is one of the seven days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the full English day name.
func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// Abbrev returns the three letter abbreviation, e.g. "Mon".
func (d Weekday) Abbrev() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayNames[d][:3]
}

// MarshalText encodes d as its full name so WeeklyHours serializes with day names as keys.
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

// UnmarshalText accepts anything ParseWeekday accepts.
func (d *Weekday) UnmarshalText(text []byte) error {
	day, ok := ParseWeekday(string(text))
	if !ok {
		return fmt.Errorf("unknown weekday %q", string(text))
	}
	*d = day
	return nil
}

// ParseWeekday parses a full day name or its three letter abbreviation, ignoring case.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for _, d := range Week {
		name := strings.ToLower(weekdayNames[d])
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return 0, false
}

// WeeklyHours maps a day to its "<open> - <close>" hours string.
// A missing day is closed.
type WeeklyHours map[Weekday]string

// Clone returns a copy of h.
func (h WeeklyHours) Clone() WeeklyHours {
	if h == nil {
		return nil
	}
	out := make(WeeklyHours, len(h))
	for d, v := range h {
		out[d] = v
	}
	return out
}

// TimeOfDay is a twelve hour clock reading such as 9:30 PM.
type TimeOfDay struct {
	Hour   int // 1-12
	Minute int // 0-59
	PM     bool
}

// String formats t as "h:mm AM".
func (t TimeOfDay) String() string {
	meridiem := "AM"
	if t.PM {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, meridiem)
}

// Hour24 returns the hour on a 24 hour clock.
func (t TimeOfDay) Hour24() int {
	h := t.Hour % 12
	if t.PM {
		h += 12
	}
	return h
}

// AfterMidnight reports whether t, read as a closing time, falls in the early
// hours of the following day (12 AM through 5:59 AM).
func (t TimeOfDay) AfterMidnight() bool {
	return !t.PM && (t.Hour == 12 || (t.Hour >= 1 && t.Hour <= 5))
}

// ClosingMinutes returns minutes since the start of the business day, with
// after-midnight closing times pushed past 24:00 so that 2:00 AM sorts after 11:00 PM.
func (t TimeOfDay) ClosingMinutes() int {
	h := t.Hour24()
	if t.AfterMidnight() {
		h += 24
	}
	return h*60 + t.Minute
}

// ParseTimeOfDay parses "<h>:<mm> <AM|PM>". The meridiem is case-insensitive and
// may be attached to the minutes ("9:00pm").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}

	var t TimeOfDay
	switch strings.ToUpper(s[len(s)-2:]) {
	case "AM":
	case "PM":
		t.PM = true
	default:
		return TimeOfDay{}, fmt.Errorf("invalid time %q: missing AM/PM", s)
	}

	clock := strings.TrimSpace(s[:len(s)-2])
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: missing minutes", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: bad hour", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: bad minutes", s)
	}
	t.Hour = hour
	t.Minute = minute
	return t, nil
}

// ParseHoursRange splits "<open> - <close>" and parses both ends.
func ParseHoursRange(s string) (open, close TimeOfDay, err error) {
	o, c, ok := strings.Cut(s, "-")
	if !ok {
		return TimeOfDay{}, TimeOfDay{}, fmt.Errorf("invalid hours %q: expected \"<open> - <close>\"", s)
	}
	if open, err = ParseTimeOfDay(o); err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	if close, err = ParseTimeOfDay(c); err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	return open, close, nil
}
