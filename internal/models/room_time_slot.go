package models

import "time"

// RoomTimeSlot is SemesterScheduleSlot's shape extended with the columns the
// room-time scheduler needs: a room and an end slot, since a studio class
// spans more than one quarter-hour. It persists under the same versioned
// SemesterSchedule header (db.semester_schedule_id) so draft/publish/archive
// lifecycle management is shared with the existing scheduler.
type RoomTimeSlot struct {
	ID                 string    `db:"id" json:"id"`
	SemesterScheduleID string    `db:"semester_schedule_id" json:"semester_schedule_id"`
	StudioClassID      string    `db:"studio_class_id" json:"studio_class_id"`
	RoomID             string    `db:"room_id" json:"room_id"`
	TeacherID          *string   `db:"teacher_id" json:"teacher_id,omitempty"`
	DayOfWeek          int       `db:"day_of_week" json:"day_of_week"`
	StartSlot          int       `db:"start_slot" json:"start_slot"`
	EndSlot            int       `db:"end_slot" json:"end_slot"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// UnscheduledClass records a studio class a run could not place or assign.
type UnscheduledClass struct {
	StudioClassID string `json:"studio_class_id"`
	Reason        string `json:"reason"`
}

// RoomTimeRunStats mirrors scheduling.Stats for JSON storage in
// SemesterSchedule.Meta.
type RoomTimeRunStats struct {
	Total                int     `json:"total"`
	Scheduled            int     `json:"scheduled"`
	Unscheduled          int     `json:"unscheduled"`
	Rate                 float64 `json:"rate"`
	UnscheduledByRoom    int     `json:"unscheduled_by_room"`
	UnscheduledByTeacher int     `json:"unscheduled_by_teacher"`
}
