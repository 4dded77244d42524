package models

import "time"

// ClassPreferenceKind mirrors scheduling.PrefKind on the wire.
type ClassPreferenceKind string

const (
	ClassPreferenceRoom    ClassPreferenceKind = "room"
	ClassPreferenceDay     ClassPreferenceKind = "day"
	ClassPreferenceTime    ClassPreferenceKind = "time"
	ClassPreferenceTeacher ClassPreferenceKind = "teacher"
)

// ClassPreference is a weighted room/day/time/teacher preference attached to
// a class. A "time" row holds an "HH:MM-HH:MM" range and is expanded to one
// scheduling.Preference per covered slot at load time.
type ClassPreference struct {
	ID        string              `db:"id" json:"id"`
	ClassID   string              `db:"class_id" json:"class_id"`
	Kind      ClassPreferenceKind `db:"kind" json:"kind"`
	Value     string              `db:"value" json:"value"`
	Weight    float64             `db:"weight" json:"weight"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}
