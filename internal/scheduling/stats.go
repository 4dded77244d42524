package scheduling

// ReportStats computes the §4.7 summary from the final placement and
// unscheduled lists. total is the input class count; scheduled is inferred
// from the placements that carry a non-nil TeacherID, since a placement
// without a teacher is reclassified into the teacher-blocked bucket by
// AssignTeachers rather than being counted as scheduled.
func ReportStats(total int, placements []Placement, unscheduled []Unscheduled) Stats {
	scheduled := 0
	for _, p := range placements {
		if p.TeacherID != nil {
			scheduled++
		}
	}

	byRoom, byTeacher := 0, 0
	for _, u := range unscheduled {
		switch u.Reason {
		case ReasonNoRoomTimeSlot:
			byRoom++
		case ReasonNoAvailableTeacher:
			byTeacher++
		}
	}

	var rate float64
	if total > 0 {
		rate = float64(scheduled) / float64(total)
	}

	return Stats{
		Total:                total,
		Scheduled:            scheduled,
		Unscheduled:          byRoom + byTeacher,
		Rate:                 rate,
		UnscheduledByRoom:    byRoom,
		UnscheduledByTeacher: byTeacher,
	}
}
