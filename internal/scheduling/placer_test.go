package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRoomTimesPlacesIntoFirstAvailableSlot(t *testing.T) {
	rooms := []Room{{RoomID: 1, Name: "A"}}
	classes := []Class{{ClassID: 1, DurationSlots: 4}}
	graph, err := NewAccordionGraph(rooms)
	require.NoError(t, err)

	m := seedRoomMatrix(fullDayAvailability(1, 0))

	placements, unscheduled, err := PlaceRoomTimes(classes, rooms, nil, graph, m)
	require.NoError(t, err)
	assert.Empty(t, unscheduled)
	require.Len(t, placements, 1)
	assert.Equal(t, 1, placements[0].RoomID)
	assert.Equal(t, SlotIndex(0), placements[0].StartSlot)
	assert.Equal(t, SlotIndex(4), placements[0].EndSlot)
}

func TestPlaceRoomTimesRecordsUnscheduledWhenNoSlotFits(t *testing.T) {
	rooms := []Room{{RoomID: 1, Name: "A"}}
	classes := []Class{{ClassID: 1, DurationSlots: 4}}
	graph, err := NewAccordionGraph(rooms)
	require.NoError(t, err)

	m := NewAvailabilityMatrix()

	placements, unscheduled, err := PlaceRoomTimes(classes, rooms, nil, graph, m)
	require.NoError(t, err)
	assert.Empty(t, placements)
	require.Len(t, unscheduled, 1)
	assert.Equal(t, ReasonNoRoomTimeSlot, unscheduled[0].Reason)
}

func TestPlaceRoomTimesAccordionMutualExclusion(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "B"},
		{RoomID: 3, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "B"}},
	}
	graph, err := NewAccordionGraph(rooms)
	require.NoError(t, err)

	avail := map[RoomSlotKey]bool{}
	for k, v := range fullDayAvailability(1, 0) {
		avail[k] = v
	}
	for k, v := range fullDayAvailability(2, 0) {
		avail[k] = v
	}
	for k, v := range fullDayAvailability(3, 0) {
		avail[k] = v
	}
	m := seedRoomMatrix(avail)

	classes := []Class{
		{ClassID: 1, DurationSlots: 4},
		{ClassID: 2, DurationSlots: 4},
	}
	prefs := map[int][]Preference{
		1: {{ClassID: 1, Kind: PrefRoom, Value: 3, Weight: 10}},
		2: {{ClassID: 2, Kind: PrefRoom, Value: 1, Weight: 10}},
	}

	placements, unscheduled, err := PlaceRoomTimes(classes, rooms, prefs, graph, m)
	require.NoError(t, err)
	assert.Empty(t, unscheduled)
	require.Len(t, placements, 2)

	byClass := map[int]Placement{}
	for _, p := range placements {
		byClass[p.ClassID] = p
	}
	assert.Equal(t, 3, byClass[1].RoomID)
	assert.NotEqual(t, byClass[1].StartSlot, byClass[2].StartSlot)
}

func fullDayAvailability(roomID int, day DayIndex) map[RoomSlotKey]bool {
	cells := make(map[RoomSlotKey]bool, SlotsPerDay)
	for s := SlotIndex(0); int(s) < SlotsPerDay; s++ {
		cells[RoomSlotKey{RoomID: roomID, Day: day, Slot: s}] = true
	}
	return cells
}
