package models

import "time"

// TeacherSpecializationKind mirrors scheduling.SpecKind on the wire.
type TeacherSpecializationKind string

const (
	TeacherSpecStyle    TeacherSpecializationKind = "style"
	TeacherSpecAgeGroup TeacherSpecializationKind = "age_group"
	TeacherSpecLevel    TeacherSpecializationKind = "level"
	TeacherSpecName     TeacherSpecializationKind = "name"
)

// TeacherSpecialization records one style/age-group/level/name a teacher is
// qualified to teach. age_group values are "INT-INT".
type TeacherSpecialization struct {
	ID        string                    `db:"id" json:"id"`
	TeacherID string                    `db:"teacher_id" json:"teacher_id"`
	Kind      TeacherSpecializationKind `db:"kind" json:"kind"`
	Value     string                    `db:"value" json:"value"`
	CreatedAt time.Time                 `db:"created_at" json:"created_at"`
}

// TeacherAvailabilityWindow is one open interval during which a teacher can
// teach, expressed the same way RoomAvailabilityWindow is.
type TeacherAvailabilityWindow struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	DayOfWeek string    `db:"day_of_week" json:"day_of_week"`
	TimeRange string    `db:"time_range" json:"time_range"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
