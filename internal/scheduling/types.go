// Package scheduling implements the two-phase constructive class scheduler:
// room-time placement followed by teacher assignment. The package is a pure
// function of its inputs — no I/O, no database handle, no framework import.
package scheduling

// DayIndex is 0 (Monday) through 6 (Sunday).
type DayIndex int

// SlotIndex is a quarter-hour offset since 00:00, 0 through 95.
type SlotIndex int

const (
	SlotsPerDay     = 96
	SlotMinutes     = 15
	MinutesPerDay   = SlotsPerDay * SlotMinutes
	DaysPerWeek     = 7
)

// Class is immutable after load.
type Class struct {
	ClassID       int
	Name          string
	Style         string
	Level         int
	AgeStart      int
	AgeEnd        int
	DurationSlots int
}

// Room is immutable after load. ComponentRoomNames is non-empty iff IsCombined.
type Room struct {
	RoomID             int
	Name               string
	IsCombined         bool
	ComponentRoomNames []string
}

// PrefKind discriminates the tagged variant carried by Preference.Value.
type PrefKind int

const (
	PrefRoom PrefKind = iota
	PrefDay
	PrefTime
	PrefTeacher
)

// Preference is {class_id, kind, value, weight} per spec.md §3. Value holds
// a RoomID, DayIndex, SlotIndex or TeacherID depending on Kind — the parse
// variant is fixed by Kind, never inferred.
type Preference struct {
	ClassID int
	Kind    PrefKind
	Value   int
	Weight  float64
}

// SpecKind discriminates TeacherSpecialization.Value.
type SpecKind int

const (
	SpecStyle SpecKind = iota
	SpecAgeGroup
	SpecLevel
	SpecName
)

// TeacherSpecialization is {teacher_id, kind, value}. AgeGroup values are
// "INT-INT" strings; Style/Level/Name are plain strings.
type TeacherSpecialization struct {
	TeacherID int
	Kind      SpecKind
	Value     string
}

// Placement is mutable during phase 1, frozen once TeacherID is set.
type Placement struct {
	ClassID   int
	RoomID    int
	Day       DayIndex
	StartSlot SlotIndex
	EndSlot   SlotIndex
	TeacherID *int
}

// UnscheduledReason enumerates the two terminal failure categories.
type UnscheduledReason string

const (
	ReasonNoRoomTimeSlot    UnscheduledReason = "no compatible room-time slot"
	ReasonNoAvailableTeacher UnscheduledReason = "no available teacher"
)

// Unscheduled records a class that failed one of the two phases.
type Unscheduled struct {
	Class  Class
	Reason UnscheduledReason
}

// Stats is the §4.7 StatsReporter output.
type Stats struct {
	Total                 int
	Scheduled             int
	Unscheduled           int
	Rate                  float64
	UnscheduledByRoom     int
	UnscheduledByTeacher  int
}

// Input is the §6 input contract, already resolved to integer ids.
type Input struct {
	Classes               []Class
	Rooms                 []Room
	RoomAvailability      map[RoomSlotKey]bool
	TeacherAvailability   map[TeacherSlotKey]bool
	ClassPreferences      map[int][]Preference
	TeacherSpecializations map[int][]TeacherSpecialization
}

// RoomSlotKey addresses one quarter-hour cell of the AvailabilityMatrix.
type RoomSlotKey struct {
	RoomID int
	Day    DayIndex
	Slot   SlotIndex
}

// TeacherSlotKey addresses one quarter-hour cell of TeacherAvailability.
type TeacherSlotKey struct {
	TeacherID int
	Day       DayIndex
	Slot      SlotIndex
}

// Output is the §6 output contract.
type Output struct {
	Scheduled   []Placement
	Unscheduled []Unscheduled
	Stats       Stats
}
