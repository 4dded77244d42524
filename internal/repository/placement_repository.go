package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/briarwood/studio-scheduler/internal/models"
)

// PlacementRepository persists room-time placements under the same
// versioned SemesterSchedule header semester_schedule_slot_repository.go
// already writes, adding the room_id/teacher_id/end_slot columns the
// room-time scheduler needs (spec SPEC_FULL.md §5).
type PlacementRepository struct {
	db *sqlx.DB
}

// NewPlacementRepository builds a placement repository.
func NewPlacementRepository(db *sqlx.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

func (r *PlacementRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// UpsertBatch inserts or updates placements for a semester schedule.
func (r *PlacementRepository) UpsertBatch(ctx context.Context, exec sqlx.ExtContext, slots []models.RoomTimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	target := r.exec(exec)
	now := time.Now().UTC()

	const query = `
INSERT INTO room_time_slots (id, semester_schedule_id, studio_class_id, room_id, teacher_id, day_of_week, start_slot, end_slot, created_at)
VALUES (:id, :semester_schedule_id, :studio_class_id, :room_id, :teacher_id, :day_of_week, :start_slot, :end_slot, :created_at)
ON CONFLICT (semester_schedule_id, studio_class_id) DO UPDATE
SET room_id = EXCLUDED.room_id,
    teacher_id = EXCLUDED.teacher_id,
    day_of_week = EXCLUDED.day_of_week,
    start_slot = EXCLUDED.start_slot,
    end_slot = EXCLUDED.end_slot`

	for i := range slots {
		slot := &slots[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, target, query, slot); err != nil {
			return fmt.Errorf("upsert room time slot: %w", err)
		}
	}
	return nil
}

// ListBySchedule returns placements ordered by day/start for a schedule.
func (r *PlacementRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error) {
	const query = `
SELECT id, semester_schedule_id, studio_class_id, room_id, teacher_id, day_of_week, start_slot, end_slot, created_at
FROM room_time_slots WHERE semester_schedule_id = $1 ORDER BY day_of_week ASC, start_slot ASC`
	var slots []models.RoomTimeSlot
	if err := r.db.SelectContext(ctx, &slots, query, scheduleID); err != nil {
		return nil, fmt.Errorf("list room time slots: %w", err)
	}
	return slots, nil
}
