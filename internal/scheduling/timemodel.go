package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var dayIndexByName = func() map[string]DayIndex {
	m := make(map[string]DayIndex, DaysPerWeek)
	for i, name := range dayNames {
		m[strings.ToLower(name)] = DayIndex(i)
	}
	return m
}()

// DayName returns the English full name for a DayIndex. Callers must only
// pass values already validated by ParseDay or produced internally.
func DayName(d DayIndex) string {
	if d < 0 || int(d) >= DaysPerWeek {
		return ""
	}
	return dayNames[d]
}

// ParseDay resolves an English day name to a DayIndex. No exceptions: the
// bool reports success so callers decide whether to skip or abort.
func ParseDay(name string) (DayIndex, bool) {
	d, ok := dayIndexByName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// ParseClockTime parses "HH:MM" 24-hour wall-clock time into a SlotIndex
// (the slot covering that instant). Returns ok=false on any malformed input
// instead of raising — flow control stays with the caller.
func ParseClockTime(raw string) (SlotIndex, bool) {
	raw = strings.TrimSpace(raw)
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}
	totalMinutes := hh*60 + mm
	return SlotIndex(totalMinutes / SlotMinutes), true
}

// FormatClockTime renders a SlotIndex back to "HH:MM" 24-hour wall-clock.
func FormatClockTime(s SlotIndex) string {
	minutes := int(s) * SlotMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseTimeRange parses "HH:MM-HH:MM" and expands it to the set of slot
// indices it covers, per spec.md §3's pre-expansion rule for time
// preferences. Returns ok=false if either bound fails to parse or the
// range is empty/inverted.
func ParseTimeRange(raw string) ([]SlotIndex, bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil, false
	}
	start, ok := ParseClockTime(parts[0])
	if !ok {
		return nil, false
	}
	end, ok := ParseClockTime(parts[1])
	if !ok {
		return nil, false
	}
	if end <= start {
		return nil, false
	}
	slots := make([]SlotIndex, 0, int(end-start))
	for s := start; s < end; s++ {
		slots = append(slots, s)
	}
	return slots, true
}

// DurationSlots converts a class-hours figure to a positive slot count,
// rounding up to the nearest quarter hour.
func DurationSlots(hours float64) int {
	slots := int(hours * 4)
	if float64(slots) < hours*4 {
		slots++
	}
	if slots < 1 {
		slots = 1
	}
	return slots
}
