package models

import "time"

// StudioClass is one offering that needs a room, a time, and a teacher —
// the unit the scheduler places. It is deliberately separate from Class
// (a homeroom section): a dance studio's "class" is a recurring session
// like "Ballet II, 1 hour", not an enrollment roster.
type StudioClass struct {
	ID              string    `db:"id" json:"id"`
	TermID          string    `db:"term_id" json:"term_id"`
	Name            string    `db:"name" json:"name"`
	Style           string    `db:"style" json:"style"`
	Level           int       `db:"level" json:"level"`
	AgeStart        int       `db:"age_start" json:"age_start"`
	AgeEnd          int       `db:"age_end" json:"age_end"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// StudioClassFilter captures supported filters for listing studio classes.
type StudioClassFilter struct {
	TermID    string
	Style     string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
