package scheduling

// scoreSlot scores a candidate (room, day, start_slot) per spec.md §4.4:
// preference score, room balance, day balance, and a continuity bonus over
// already-placed classes in the same (room, day). classByID resolves a
// placed class's style/level for the continuity bonus.
func scoreSlot(cand Candidate, c Class, prefs []Preference, placed []Placement, classByID map[int]Class) float64 {
	score := preferenceScore(cand, c, prefs)
	score += roomBalanceScore(cand.RoomID, placed)
	score += dayBalanceScore(cand.Day, placed)
	score += continuityScore(cand, c, placed, classByID)
	return score
}

func preferenceScore(cand Candidate, c Class, prefs []Preference) float64 {
	var score float64

	if w, ok := firstWeight(prefs, PrefRoom, cand.RoomID); ok {
		score += 10 * w
	}
	if w, ok := firstWeight(prefs, PrefDay, int(cand.Day)); ok {
		score += 8 * w
	}
	if w, ok := firstTimeWeight(prefs, cand.StartSlot, c.DurationSlots); ok {
		score += 5 * w
	}

	return score
}

// firstWeight returns the weight of the first preference of kind matching
// value, per the spec's "first match, if any" rule.
func firstWeight(prefs []Preference, kind PrefKind, value int) (float64, bool) {
	for _, p := range prefs {
		if p.Kind == kind && p.Value == value {
			return p.Weight, true
		}
	}
	return 0, false
}

// firstTimeWeight returns the weight of the first time preference whose slot
// falls inside [start, start+duration).
func firstTimeWeight(prefs []Preference, start SlotIndex, duration int) (float64, bool) {
	for _, p := range prefs {
		if p.Kind != PrefTime {
			continue
		}
		slot := SlotIndex(p.Value)
		if slot >= start && slot < start+SlotIndex(duration) {
			return p.Weight, true
		}
	}
	return 0, false
}

func roomBalanceScore(roomID int, placed []Placement) float64 {
	counts := make(map[int]int)
	for _, p := range placed {
		counts[p.RoomID]++
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	return 3 * float64(maxCount-counts[roomID])
}

func dayBalanceScore(day DayIndex, placed []Placement) float64 {
	counts := make(map[DayIndex]int)
	for _, p := range placed {
		counts[p.Day]++
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	return 2 * float64(maxCount-counts[day])
}

// continuityScore adds a bonus when the candidate is immediately adjacent
// (same room, same day) to an already-placed class: +5 for a matching
// style, +3 when the levels are sequential in the adjacency direction.
func continuityScore(cand Candidate, c Class, placed []Placement, classByID map[int]Class) float64 {
	var score float64
	for _, p := range placed {
		if p.RoomID != cand.RoomID || p.Day != cand.Day {
			continue
		}
		other, ok := classByID[p.ClassID]
		if !ok {
			continue
		}

		if p.EndSlot == cand.StartSlot {
			if other.Style == c.Style {
				score += 5
			}
			if other.Level+1 == c.Level {
				score += 3
			}
		}
		if cand.StartSlot+SlotIndex(c.DurationSlots) == p.StartSlot {
			if other.Style == c.Style {
				score += 5
			}
			if c.Level+1 == other.Level {
				score += 3
			}
		}
	}
	return score
}
