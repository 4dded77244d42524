// Package loader declares the read-side collaborators the room-time
// scheduler depends on to build a scheduling.Input. The scheduling core
// never imports a driver or a framework; everything it needs is fetched by
// a caller through these interfaces first. internal/repository is the only
// production implementation today, but tabular/CSV sources described in the
// original tool remain out of scope per spec.md §6 — these interfaces are
// what keeps that boundary real instead of hypothetical.
package loader

import "context"

// ClassSource lists the studio classes that need a room, time, and teacher
// for a given term.
type ClassSource interface {
	ListClasses(ctx context.Context, termID string) ([]ClassRecord, error)
}

// RoomSource lists rooms and their open availability windows.
type RoomSource interface {
	ListRooms(ctx context.Context) ([]RoomRecord, error)
	ListRoomAvailability(ctx context.Context) ([]AvailabilityWindow, error)
}

// PreferenceSource lists per-class scheduling preferences.
type PreferenceSource interface {
	ListClassPreferences(ctx context.Context, termID string) ([]PreferenceRecord, error)
}

// TeacherSource lists teachers, their specializations, and their
// availability windows.
type TeacherSource interface {
	ListTeacherSpecializations(ctx context.Context) ([]SpecializationRecord, error)
	ListTeacherAvailability(ctx context.Context) ([]AvailabilityWindow, error)
}

// ClassRecord is the loader-side view of models.StudioClass.
type ClassRecord struct {
	ID              string
	Name            string
	Style           string
	Level           int
	AgeStart        int
	AgeEnd          int
	DurationMinutes int
}

// RoomRecord is the loader-side view of a physical or combined studio room.
type RoomRecord struct {
	ID                 string
	Name               string
	IsCombined         bool
	ComponentRoomNames []string
}

// AvailabilityWindow is one open "day_of_week HH:MM-HH:MM" interval for a
// room or a teacher, keyed by whichever OwnerID it was fetched for.
type AvailabilityWindow struct {
	OwnerID   string
	DayOfWeek string
	TimeRange string
}

// PreferenceRecord is the loader-side view of models.ClassPreference.
type PreferenceRecord struct {
	ClassID string
	Kind    string
	Value   string
	Weight  float64
}

// SpecializationRecord is the loader-side view of models.TeacherSpecialization.
type SpecializationRecord struct {
	TeacherID string
	Kind      string
	Value     string
}
