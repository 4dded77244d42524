package scheduling

import (
	"sort"
	"strconv"
	"strings"
)

// teacherAvailability is a deep-copied, mutable (teacher_id, day, slot) -> bool
// bitset owned by a single AssignTeachers call. Cloning from the input map
// avoids the source implementation's shared-cell copy bug (spec.md §9):
// every assignment here zeroes cells in this copy only.
type teacherAvailability struct {
	cells map[TeacherSlotKey]bool
}

func newTeacherAvailability(src map[TeacherSlotKey]bool) *teacherAvailability {
	cells := make(map[TeacherSlotKey]bool, len(src))
	for k, v := range src {
		if v {
			cells[k] = true
		}
	}
	return &teacherAvailability{cells: cells}
}

func (ta *teacherAvailability) canTeach(teacherID int, day DayIndex, start, end SlotIndex) bool {
	for s := start; s < end; s++ {
		if !ta.cells[TeacherSlotKey{TeacherID: teacherID, Day: day, Slot: s}] {
			return false
		}
	}
	return true
}

func (ta *teacherAvailability) reserve(teacherID int, day DayIndex, start, end SlotIndex) {
	for s := start; s < end; s++ {
		delete(ta.cells, TeacherSlotKey{TeacherID: teacherID, Day: day, Slot: s})
	}
}

// AssignTeachers runs the phase-2 chronological greedy pass (spec.md §4.6)
// over placements already produced by PlaceRoomTimes. Placements are
// processed in (day, start_slot) order; each qualifying, available teacher
// is scored and the best is assigned, zeroing that teacher's slots in a
// private copy of the input availability so a later placement never
// double-books. A placement with no available teacher is recorded in the
// unscheduled list with the teacher-blocked reason and left with a nil
// TeacherID.
func AssignTeachers(placements []Placement, classByID map[int]Class, teacherIDs []int, availability map[TeacherSlotKey]bool, prefs map[int][]Preference, specs map[int][]TeacherSpecialization) ([]Placement, []Unscheduled) {
	ordered := make([]Placement, len(placements))
	copy(ordered, placements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day < ordered[j].Day
		}
		return ordered[i].StartSlot < ordered[j].StartSlot
	})

	sortedTeacherIDs := make([]int, len(teacherIDs))
	copy(sortedTeacherIDs, teacherIDs)
	sort.Ints(sortedTeacherIDs)

	ta := newTeacherAvailability(availability)

	var unscheduled []Unscheduled
	for i := range ordered {
		p := &ordered[i]
		class := classByID[p.ClassID]

		bestTeacher := -1
		bestScore := 0.0
		for _, t := range sortedTeacherIDs {
			if !ta.canTeach(t, p.Day, p.StartSlot, p.EndSlot) {
				continue
			}
			score := teacherScore(t, class, prefs[p.ClassID], specs[t])
			if bestTeacher == -1 || score > bestScore {
				bestTeacher, bestScore = t, score
			}
		}

		if bestTeacher == -1 {
			unscheduled = append(unscheduled, Unscheduled{Class: class, Reason: ReasonNoAvailableTeacher})
			continue
		}

		teacherID := bestTeacher
		p.TeacherID = &teacherID
		ta.reserve(bestTeacher, p.Day, p.StartSlot, p.EndSlot)
	}

	return ordered, unscheduled
}

// teacherScore implements the §4.6 step-2 weighted score for one candidate
// teacher against one placement's class.
func teacherScore(teacherID int, c Class, prefs []Preference, specs []TeacherSpecialization) float64 {
	var score float64

	if w, ok := firstWeight(prefs, PrefTeacher, teacherID); ok {
		score += 10 * w
	}

	if hasSpecValue(specs, SpecStyle, c.Style) {
		score += 8
	}

	if ageGroupMatches(specs, c.AgeStart, c.AgeEnd) {
		score += 5
	}

	if hasSpecValue(specs, SpecLevel, strconv.Itoa(c.Level)) {
		score += 3
	}

	return score
}

func hasSpecValue(specs []TeacherSpecialization, kind SpecKind, value string) bool {
	for _, s := range specs {
		if s.Kind == kind && s.Value == value {
			return true
		}
	}
	return false
}

// ageGroupMatches parses each age_group specialization as "a-b" and checks
// containment; if a value fails to parse, it falls back to an exact string
// match against the class's own "start-end" range (spec.md §4.6 step 2).
func ageGroupMatches(specs []TeacherSpecialization, classStart, classEnd int) bool {
	classRange := strconv.Itoa(classStart) + "-" + strconv.Itoa(classEnd)
	for _, s := range specs {
		if s.Kind != SpecAgeGroup {
			continue
		}
		a, b, ok := parseAgeGroup(s.Value)
		if !ok {
			if s.Value == classRange {
				return true
			}
			continue
		}
		if a <= classStart && classEnd <= b {
			return true
		}
	}
	return false
}

func parseAgeGroup(value string) (int, int, bool) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}
