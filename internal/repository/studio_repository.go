package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/briarwood/studio-scheduler/internal/loader"
)

// StudioRepository loads the room-time scheduler's input contract
// (classes, rooms, availability, preferences, specializations) from
// Postgres. It implements every loader interface so the service can depend
// on the narrower interfaces instead of this concrete type.
type StudioRepository struct {
	db *sqlx.DB
}

// NewStudioRepository constructs a new studio repository.
func NewStudioRepository(db *sqlx.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

var _ loader.ClassSource = (*StudioRepository)(nil)
var _ loader.RoomSource = (*StudioRepository)(nil)
var _ loader.PreferenceSource = (*StudioRepository)(nil)
var _ loader.TeacherSource = (*StudioRepository)(nil)

// ListClasses returns every studio class offered in a term.
func (r *StudioRepository) ListClasses(ctx context.Context, termID string) ([]loader.ClassRecord, error) {
	const query = `
		SELECT id, name, style, level, age_start, age_end, duration_minutes
		FROM studio_classes
		WHERE term_id = $1
		ORDER BY id`

	rows := []struct {
		ID              string `db:"id"`
		Name            string `db:"name"`
		Style           string `db:"style"`
		Level           int    `db:"level"`
		AgeStart        int    `db:"age_start"`
		AgeEnd          int    `db:"age_end"`
		DurationMinutes int    `db:"duration_minutes"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, termID); err != nil {
		return nil, err
	}

	records := make([]loader.ClassRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, loader.ClassRecord{
			ID:              row.ID,
			Name:            row.Name,
			Style:           row.Style,
			Level:           row.Level,
			AgeStart:        row.AgeStart,
			AgeEnd:          row.AgeEnd,
			DurationMinutes: row.DurationMinutes,
		})
	}
	return records, nil
}

// ListRooms returns every room, standalone and combined.
func (r *StudioRepository) ListRooms(ctx context.Context) ([]loader.RoomRecord, error) {
	const query = `
		SELECT id, name, is_combined, component_room_names
		FROM rooms
		ORDER BY id`

	rows := []struct {
		ID                 string         `db:"id"`
		Name               string         `db:"name"`
		IsCombined         bool           `db:"is_combined"`
		ComponentRoomNames pq.StringArray `db:"component_room_names"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	records := make([]loader.RoomRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, loader.RoomRecord{
			ID:                 row.ID,
			Name:               row.Name,
			IsCombined:         row.IsCombined,
			ComponentRoomNames: row.ComponentRoomNames,
		})
	}
	return records, nil
}

// ListRoomAvailability returns every room's open windows.
func (r *StudioRepository) ListRoomAvailability(ctx context.Context) ([]loader.AvailabilityWindow, error) {
	const query = `SELECT room_id AS owner_id, day_of_week, time_range FROM room_availability_windows`
	return r.listAvailabilityWindows(ctx, query)
}

// ListTeacherAvailability returns every teacher's open windows.
func (r *StudioRepository) ListTeacherAvailability(ctx context.Context) ([]loader.AvailabilityWindow, error) {
	const query = `SELECT teacher_id AS owner_id, day_of_week, time_range FROM teacher_availability_windows`
	return r.listAvailabilityWindows(ctx, query)
}

func (r *StudioRepository) listAvailabilityWindows(ctx context.Context, query string) ([]loader.AvailabilityWindow, error) {
	rows := []struct {
		OwnerID   string `db:"owner_id"`
		DayOfWeek string `db:"day_of_week"`
		TimeRange string `db:"time_range"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	windows := make([]loader.AvailabilityWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, loader.AvailabilityWindow{
			OwnerID:   row.OwnerID,
			DayOfWeek: row.DayOfWeek,
			TimeRange: row.TimeRange,
		})
	}
	return windows, nil
}

// ListClassPreferences returns every class's room/day/time/teacher
// preferences for a term.
func (r *StudioRepository) ListClassPreferences(ctx context.Context, termID string) ([]loader.PreferenceRecord, error) {
	const query = `
		SELECT cp.class_id, cp.kind, cp.value, cp.weight
		FROM class_preferences cp
		JOIN studio_classes sc ON sc.id = cp.class_id
		WHERE sc.term_id = $1`

	rows := []struct {
		ClassID string  `db:"class_id"`
		Kind    string  `db:"kind"`
		Value   string  `db:"value"`
		Weight  float64 `db:"weight"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, termID); err != nil {
		return nil, err
	}

	records := make([]loader.PreferenceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, loader.PreferenceRecord{
			ClassID: row.ClassID,
			Kind:    row.Kind,
			Value:   row.Value,
			Weight:  row.Weight,
		})
	}
	return records, nil
}

// ListTeacherSpecializations returns every teacher's style/age-group/level/
// name qualifications.
func (r *StudioRepository) ListTeacherSpecializations(ctx context.Context) ([]loader.SpecializationRecord, error) {
	const query = `SELECT teacher_id, kind, value FROM teacher_specializations`

	rows := []struct {
		TeacherID string `db:"teacher_id"`
		Kind      string `db:"kind"`
		Value     string `db:"value"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	records := make([]loader.SpecializationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, loader.SpecializationRecord{
			TeacherID: row.TeacherID,
			Kind:      row.Kind,
			Value:     row.Value,
		})
	}
	return records, nil
}
