package scheduling

import "sort"

// Candidate is one compatible (room, day, start_slot) triple for a class.
type Candidate struct {
	RoomID    int
	Day       DayIndex
	StartSlot SlotIndex
}

// enumerateSlots yields every candidate slot for class C that satisfies its
// room/day/time preferences (or "any" when a preference kind is absent) and
// is free in m for the class's full duration. Ordering is lexicographic
// (room_id, day_idx, start_slot) so downstream tie-breaking is deterministic
// (spec.md §4.3).
func enumerateSlots(c Class, rooms []Room, prefs []Preference, m *AvailabilityMatrix) []Candidate {
	preferredRooms := prefValues(prefs, PrefRoom)
	preferredDays := prefValues(prefs, PrefDay)
	preferredTimes := prefValues(prefs, PrefTime)

	roomIDs := make([]int, 0, len(rooms))
	for _, r := range rooms {
		if len(preferredRooms) > 0 && !containsInt(preferredRooms, r.RoomID) {
			continue
		}
		roomIDs = append(roomIDs, r.RoomID)
	}
	sort.Ints(roomIDs)

	var candidates []Candidate
	for _, roomID := range roomIDs {
		for day := DayIndex(0); int(day) < DaysPerWeek; day++ {
			if len(preferredDays) > 0 && !containsInt(preferredDays, int(day)) {
				continue
			}
			for start := SlotIndex(0); int(start) < SlotsPerDay; start++ {
				if len(preferredTimes) > 0 && !containsInt(preferredTimes, int(start)) {
					continue
				}
				if int(start)+c.DurationSlots > SlotsPerDay {
					continue
				}
				if m.IsFree(roomID, day, start, c.DurationSlots) {
					candidates = append(candidates, Candidate{RoomID: roomID, Day: day, StartSlot: start})
				}
			}
		}
	}
	return candidates
}

func prefValues(prefs []Preference, kind PrefKind) []int {
	var values []int
	for _, p := range prefs {
		if p.Kind == kind {
			values = append(values, p.Value)
		}
	}
	return values
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
