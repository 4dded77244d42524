package scheduling

// PlaceRoomTimes runs the phase-1 greedy constructive search (spec.md §4.5):
// classes are visited in difficulty order, each gets the highest-scoring
// free slot (lexicographic tie-break), and the matrix is updated through the
// accordion graph before moving to the next class. A class with no
// compatible slot is recorded and the loop continues — failure is never
// fatal to the run.
//
// The matrix m is updated in place, so after the call it holds the final
// (post-run) state for a caller that continues into phase 2 or inspects
// room utilisation.
func PlaceRoomTimes(classes []Class, rooms []Room, prefs map[int][]Preference, graph *AccordionGraph, m *AvailabilityMatrix) ([]Placement, []Unscheduled, error) {
	ranked := rankByDifficulty(classes, prefs)
	classByID := make(map[int]Class, len(classes))
	for _, c := range classes {
		classByID[c.ClassID] = c
	}

	var placements []Placement
	var unscheduled []Unscheduled

	for _, c := range ranked {
		candidates := enumerateSlots(c, rooms, prefs[c.ClassID], m)
		if len(candidates) == 0 {
			unscheduled = append(unscheduled, Unscheduled{Class: c, Reason: ReasonNoRoomTimeSlot})
			continue
		}

		best := candidates[0]
		bestScore := scoreSlot(best, c, prefs[c.ClassID], placements, classByID)
		for _, cand := range candidates[1:] {
			s := scoreSlot(cand, c, prefs[c.ClassID], placements, classByID)
			if s > bestScore {
				best, bestScore = cand, s
			}
		}

		placement := Placement{
			ClassID:   c.ClassID,
			RoomID:    best.RoomID,
			Day:       best.Day,
			StartSlot: best.StartSlot,
			EndSlot:   best.StartSlot + SlotIndex(c.DurationSlots),
		}
		placements = append(placements, placement)

		for s := placement.StartSlot; s < placement.EndSlot; s++ {
			markBusy(m, graph, placement.RoomID, placement.Day, s)
			if err := checkInvariantC1(m, graph, placement.RoomID, placement.Day, s); err != nil {
				return nil, nil, err
			}
		}
	}

	return placements, unscheduled, nil
}
