package service

import (
	"fmt"
	"strings"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

const (
	// HoursNotAvailable is returned when no day has hours.
	HoursNotAvailable = "Hours not available"
	// ExtendedHoursSuffix is appended when Friday or Saturday closes later than the rest of the week.
	ExtendedHoursSuffix = " (Extended hours on weekends)"

	segmentSeparator = " | "
)

var (
	weekdaysGroup = []model.Weekday{model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday}
	weekendGroup  = []model.Weekday{model.Saturday, model.Sunday}
)

type dayGroup struct {
	hours string
	days  []model.Weekday
}

// FormatHours renders a weekly schedule as a compact summary such as
// "Weekdays: 10:00 AM - 8:00 PM | Weekend: 11:00 AM - 6:00 PM".
//
// Days are grouped by identical hours strings; grouping never parses times, so
// malformed entries still appear. With includeExtendedNote, ExtendedHoursSuffix is
// appended when HasExtendedWeekendHours holds.
func FormatHours(hours model.WeeklyHours, includeExtendedNote bool) string {
	groups := groupDays(hours)
	if len(groups) == 0 {
		return HoursNotAvailable
	}

	segments := make([]string, 0, len(groups))
	for _, g := range groups {
		segments = append(segments, dayRangeLabel(g.days)+": "+g.hours)
	}
	out := strings.Join(segments, segmentSeparator)

	if includeExtendedNote && HasExtendedWeekendHours(hours) {
		out += ExtendedHoursSuffix
	}
	return out
}

// groupDays returns one group per distinct hours string, ordered by the first
// day (Monday first) that uses it. Blank entries count as closed.
func groupDays(hours model.WeeklyHours) []dayGroup {
	var groups []dayGroup
	index := make(map[string]int, len(hours))
	for _, day := range model.Week {
		h, ok := hours[day]
		if !ok || strings.TrimSpace(h) == "" {
			continue
		}
		i, seen := index[h]
		if !seen {
			i = len(groups)
			index[h] = i
			groups = append(groups, dayGroup{hours: h})
		}
		groups[i].days = append(groups[i].days, day)
	}
	return groups
}

// dayRangeLabel expects days in calendar order.
func dayRangeLabel(days []model.Weekday) string {
	switch {
	case len(days) == len(model.Week):
		return "Every day"
	case sameDays(days, weekdaysGroup):
		return "Weekdays"
	case sameDays(days, weekendGroup):
		return "Weekend"
	}

	first, last := days[0], days[len(days)-1]
	if len(days) == int(last-first)+1 {
		return first.Abbrev() + " - " + last.Abbrev()
	}

	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.Abbrev()
	}
	return strings.Join(names, ", ")
}

func sameDays(a, b []model.Weekday) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasExtendedWeekendHours reports whether the latest Friday or Saturday closing
// time is later than the latest closing time of the other five days. Closing times
// from 12 AM to 5:59 AM count as after midnight. Entries that do not parse are
// skipped; if either side has no parsable entry the answer is false.
func HasExtendedWeekendHours(hours model.WeeklyHours) bool {
	weekendMax, weekendOK := -1, false
	otherMax, otherOK := -1, false

	for _, day := range model.Week {
		h, ok := hours[day]
		if !ok {
			continue
		}
		_, closing, err := model.ParseHoursRange(h)
		if err != nil {
			continue
		}
		m := closing.ClosingMinutes()
		if day == model.Friday || day == model.Saturday {
			weekendOK = true
			weekendMax = max(weekendMax, m)
		} else {
			otherOK = true
			otherMax = max(otherMax, m)
		}
	}
	return weekendOK && otherOK && weekendMax > otherMax
}

// FormatExtendedHoursNote renders the raw Friday and Saturday hours, e.g.
// "Friday 10:00 AM - 2:00 AM & Saturday 10:00 AM - 2:00 AM". The boolean is false
// when neither day has hours.
func FormatExtendedHoursNote(hours model.WeeklyHours) (string, bool) {
	var parts []string
	for _, day := range []model.Weekday{model.Friday, model.Saturday} {
		if h, ok := hours[day]; ok && strings.TrimSpace(h) != "" {
			parts = append(parts, day.String()+" "+h)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " & "), true
}

// ParseWeeklyHours converts day-name keyed hours into WeeklyHours. Keys may be
// full day names or three letter abbreviations in any case.
func ParseWeeklyHours(raw map[string]string) (model.WeeklyHours, error) {
	hours := make(model.WeeklyHours, len(raw))
	for key, value := range raw {
		day, ok := model.ParseWeekday(key)
		if !ok {
			return nil, invalidInput("hours", "unknown day %q", key)
		}
		if _, dup := hours[day]; dup {
			return nil, invalidInput("hours", "day %s given more than once", day)
		}
		hours[day] = value
	}
	return hours, nil
}

// WeeklyHoursToMap is the inverse of ParseWeeklyHours, keyed by full day name.
func WeeklyHoursToMap(hours model.WeeklyHours) map[string]string {
	out := make(map[string]string, len(hours))
	for day, h := range hours {
		if day.Valid() {
			out[day.String()] = h
		}
	}
	return out
}

// ValidateHours checks that every non-blank day holds a parsable "<open> - <close>" range.
func ValidateHours(hours model.WeeklyHours) error {
	for _, day := range model.Week {
		h, ok := hours[day]
		if !ok || strings.TrimSpace(h) == "" {
			continue
		}
		if _, _, err := model.ParseHoursRange(h); err != nil {
			return invalidInput(fmt.Sprintf("hours.%s", day), "%v", err)
		}
	}
	for day := range hours {
		if !day.Valid() {
			return invalidInput("hours", "unknown day %d", int(day))
		}
	}
	return nil
}
