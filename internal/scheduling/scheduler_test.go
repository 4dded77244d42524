package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunS1BasicSingleRoom(t *testing.T) {
	in := Input{
		Classes: []Class{{ClassID: 1, Name: "A", DurationSlots: 4}},
		Rooms:   []Room{{RoomID: 1, Name: "R1"}},
		RoomAvailability: rangeAvailability(1, 0, 36, 48),
		TeacherAvailability: teacherRangeAvailability(1, 0, 36, 48),
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Scheduled, 1)
	assert.Equal(t, 1, out.Scheduled[0].RoomID)
	assert.Equal(t, SlotIndex(36), out.Scheduled[0].StartSlot)
	assert.Equal(t, SlotIndex(40), out.Scheduled[0].EndSlot)
	assert.Equal(t, 1, out.Stats.Scheduled)
}

func TestRunS2AccordionPropagation(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "R1"},
		{RoomID: 2, Name: "R2"},
		{RoomID: 3, Name: "R1+2", IsCombined: true, ComponentRoomNames: []string{"R1", "R2"}},
	}
	avail := map[RoomSlotKey]bool{}
	for _, r := range []int{1, 2, 3} {
		for k, v := range rangeAvailability(r, 0, 36, 44) {
			avail[k] = v
		}
	}

	in := Input{
		Classes: []Class{
			{ClassID: 1, Name: "A", DurationSlots: 4},
			{ClassID: 2, Name: "B", DurationSlots: 4},
		},
		Rooms:               rooms,
		RoomAvailability:    avail,
		TeacherAvailability: teacherRangeAvailability(1, 0, 36, 44),
		ClassPreferences: map[int][]Preference{
			1: {{ClassID: 1, Kind: PrefRoom, Value: 3, Weight: 5}},
			2: {{ClassID: 2, Kind: PrefRoom, Value: 1, Weight: 5}},
		},
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Scheduled, 2)

	slots := map[SlotIndex]bool{}
	for _, p := range out.Scheduled {
		slots[p.StartSlot] = true
	}
	assert.True(t, slots[36])
	assert.True(t, slots[40])

	graph, err := NewAccordionGraph(rooms)
	require.NoError(t, err)
	assert.Empty(t, AuditConflicts(out.Scheduled, graph))
}

func TestRunS3PreferenceTakesPriorityOverBalance(t *testing.T) {
	avail := map[RoomSlotKey]bool{}
	for k, v := range rangeAvailability(1, 0, 36, 40) {
		avail[k] = v
	}
	for k, v := range rangeAvailability(2, 0, 36, 40) {
		avail[k] = v
	}

	in := Input{
		Classes: []Class{{ClassID: 1, Name: "A", DurationSlots: 4}},
		Rooms: []Room{
			{RoomID: 1, Name: "R1"},
			{RoomID: 2, Name: "R2"},
		},
		RoomAvailability:    avail,
		TeacherAvailability: teacherRangeAvailability(1, 0, 36, 40),
		ClassPreferences: map[int][]Preference{
			1: {{ClassID: 1, Kind: PrefRoom, Value: 2, Weight: 5}},
		},
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Scheduled, 1)
	assert.Equal(t, 2, out.Scheduled[0].RoomID)
}

func TestRunS4ContinuityBonusPrefersSameRoom(t *testing.T) {
	avail := map[RoomSlotKey]bool{}
	for k, v := range rangeAvailability(1, 0, 36, 44) {
		avail[k] = v
	}
	for k, v := range rangeAvailability(2, 0, 40, 44) {
		avail[k] = v
	}

	in := Input{
		Classes: []Class{
			{ClassID: 1, Name: "A", Style: "ballet", Level: 1, DurationSlots: 4},
			{ClassID: 2, Name: "B", Style: "ballet", Level: 2, DurationSlots: 4},
		},
		Rooms: []Room{
			{RoomID: 1, Name: "R1"},
			{RoomID: 2, Name: "R2"},
		},
		RoomAvailability:    avail,
		TeacherAvailability: teacherRangeAvailability(1, 0, 36, 44),
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Scheduled, 2)

	byClass := map[int]Placement{}
	for _, p := range out.Scheduled {
		byClass[p.ClassID] = p
	}
	assert.Equal(t, 1, byClass[2].RoomID)
	assert.Equal(t, SlotIndex(40), byClass[2].StartSlot)
}

func TestRunS5TeacherAssignmentFallback(t *testing.T) {
	in := Input{
		Classes:          []Class{{ClassID: 1, Name: "A", Style: "ballet", DurationSlots: 4}},
		Rooms:            []Room{{RoomID: 1, Name: "R1"}},
		RoomAvailability: rangeAvailability(1, 0, 0, 4),
		TeacherAvailability: map[TeacherSlotKey]bool{
			{TeacherID: 2, Day: 0, Slot: 0}: true,
			{TeacherID: 2, Day: 0, Slot: 1}: true,
			{TeacherID: 2, Day: 0, Slot: 2}: true,
			{TeacherID: 2, Day: 0, Slot: 3}: true,
		},
		ClassPreferences: map[int][]Preference{
			1: {{ClassID: 1, Kind: PrefTeacher, Value: 1, Weight: 5}},
		},
		TeacherSpecializations: map[int][]TeacherSpecialization{
			2: {{TeacherID: 2, Kind: SpecStyle, Value: "ballet"}},
		},
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Scheduled, 1)
	require.NotNil(t, out.Scheduled[0].TeacherID)
	assert.Equal(t, 2, *out.Scheduled[0].TeacherID)
	assert.Equal(t, 0, out.Stats.UnscheduledByTeacher)
}

func TestRunS6UnscheduledOnNoTeacher(t *testing.T) {
	in := Input{
		Classes:          []Class{{ClassID: 1, Name: "A", DurationSlots: 4}},
		Rooms:            []Room{{RoomID: 1, Name: "R1"}},
		RoomAvailability: rangeAvailability(1, 0, 0, 4),
	}
	out, err := Run(in)
	require.NoError(t, err)
	require.Len(t, out.Unscheduled, 1)
	assert.Equal(t, ReasonNoAvailableTeacher, out.Unscheduled[0].Reason)
	assert.Equal(t, 1, out.Stats.UnscheduledByTeacher)
}

func TestRunRejectsDuplicateClassID(t *testing.T) {
	in := Input{
		Classes: []Class{
			{ClassID: 1, DurationSlots: 1},
			{ClassID: 1, DurationSlots: 1},
		},
		Rooms: []Room{{RoomID: 1, Name: "R1"}},
	}
	_, err := Run(in)
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestRunIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	in := Input{
		Classes: []Class{
			{ClassID: 1, Name: "A", DurationSlots: 4},
			{ClassID: 2, Name: "B", Style: "ballet", DurationSlots: 4},
		},
		Rooms: []Room{
			{RoomID: 1, Name: "R1"},
			{RoomID: 2, Name: "R2"},
		},
		RoomAvailability: mergeAvailability(
			rangeAvailability(1, 0, 0, 96),
			rangeAvailability(2, 0, 0, 96),
		),
	}
	first, err := Run(in)
	require.NoError(t, err)
	second, err := Run(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func rangeAvailability(roomID int, day DayIndex, start, end SlotIndex) map[RoomSlotKey]bool {
	cells := make(map[RoomSlotKey]bool, int(end-start))
	for s := start; s < end; s++ {
		cells[RoomSlotKey{RoomID: roomID, Day: day, Slot: s}] = true
	}
	return cells
}

func teacherRangeAvailability(teacherID int, day DayIndex, start, end SlotIndex) map[TeacherSlotKey]bool {
	cells := make(map[TeacherSlotKey]bool, int(end-start))
	for s := start; s < end; s++ {
		cells[TeacherSlotKey{TeacherID: teacherID, Day: day, Slot: s}] = true
	}
	return cells
}

func mergeAvailability(maps ...map[RoomSlotKey]bool) map[RoomSlotKey]bool {
	out := map[RoomSlotKey]bool{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
