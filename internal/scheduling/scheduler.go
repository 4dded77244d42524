package scheduling

// Run is the top-level entry point: validate → build graph/matrix → place
// rooms/times → assign teachers → report stats. It is the only exported
// function most callers need; everything else in the package is exposed for
// testing and for collaborators that want to drive the phases separately.
//
// Run returns an error only for InputError (malformed input, aborts before
// any placement) or InternalInvariantViolation (a bug, aborts mid-run).
// Individual class failures are never returned as errors — they surface in
// Output.Unscheduled.
func Run(in Input) (Output, error) {
	if err := validateInput(in); err != nil {
		return Output{}, err
	}

	graph, err := NewAccordionGraph(in.Rooms)
	if err != nil {
		return Output{}, err
	}

	matrix := seedRoomMatrix(in.RoomAvailability)

	placements, roomUnscheduled, err := PlaceRoomTimes(in.Classes, in.Rooms, in.ClassPreferences, graph, matrix)
	if err != nil {
		return Output{}, err
	}

	classByID := make(map[int]Class, len(in.Classes))
	for _, c := range in.Classes {
		classByID[c.ClassID] = c
	}

	teacherIDs := collectTeacherIDs(in.TeacherAvailability, in.TeacherSpecializations)

	assigned, teacherUnscheduled := AssignTeachers(placements, classByID, teacherIDs, in.TeacherAvailability, in.ClassPreferences, in.TeacherSpecializations)

	unscheduled := make([]Unscheduled, 0, len(roomUnscheduled)+len(teacherUnscheduled))
	unscheduled = append(unscheduled, roomUnscheduled...)
	unscheduled = append(unscheduled, teacherUnscheduled...)

	stats := ReportStats(len(in.Classes), assigned, unscheduled)

	scheduled := make([]Placement, 0, len(assigned))
	for _, p := range assigned {
		if p.TeacherID != nil {
			scheduled = append(scheduled, p)
		}
	}

	return Output{
		Scheduled:   scheduled,
		Unscheduled: unscheduled,
		Stats:       stats,
	}, nil
}

func collectTeacherIDs(availability map[TeacherSlotKey]bool, specs map[int][]TeacherSpecialization) []int {
	seen := make(map[int]bool)
	for k := range availability {
		seen[k.TeacherID] = true
	}
	for id := range specs {
		seen[id] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids
}

// validateInput enforces the §7 InputError cases that are not already
// covered by NewAccordionGraph: duplicate class_id and non-positive duration.
func validateInput(in Input) error {
	seen := make(map[int]bool, len(in.Classes))
	for _, c := range in.Classes {
		if seen[c.ClassID] {
			return newInputError("class_id", "duplicate class id %d", c.ClassID)
		}
		seen[c.ClassID] = true
		if c.DurationSlots <= 0 {
			return newInputError("duration_slots", "class %d has non-positive duration %d", c.ClassID, c.DurationSlots)
		}
	}
	return nil
}
