package scheduling

// Conflict is a pair of placements that violate the §6 conflict rule.
type Conflict struct {
	A, B Placement
}

// AuditConflicts is the out-of-scope "auditor" collaborator named in the
// source: it re-derives conflicts from a finished placement list rather
// than trusting the run that produced them, so it can be pointed at
// placements assembled from outside this package (e.g. loaded back from
// storage) without re-running the scheduler. Two placements conflict iff
// same day and (same room or accordion-partner rooms) and their slot
// intervals overlap (spec.md §6).
func AuditConflicts(placements []Placement, graph *AccordionGraph) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			if a.Day != b.Day {
				continue
			}
			if !sameOrPartnerRoom(a.RoomID, b.RoomID, graph) {
				continue
			}
			if slotsOverlap(a.StartSlot, a.EndSlot, b.StartSlot, b.EndSlot) {
				conflicts = append(conflicts, Conflict{A: a, B: b})
			}
		}
	}
	return conflicts
}

func sameOrPartnerRoom(roomA, roomB int, graph *AccordionGraph) bool {
	if roomA == roomB {
		return true
	}
	for _, p := range graph.PartnersOf(roomA) {
		if p == roomB {
			return true
		}
	}
	return false
}

func slotsOverlap(aStart, aEnd, bStart, bEnd SlotIndex) bool {
	return aStart < bEnd && bStart < aEnd
}
