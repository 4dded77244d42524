package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityMatrixIsFreeRequiresEveryCoveredSlot(t *testing.T) {
	m := seedRoomMatrix(map[RoomSlotKey]bool{
		{RoomID: 1, Day: 0, Slot: 10}: true,
		{RoomID: 1, Day: 0, Slot: 11}: true,
	})
	assert.True(t, m.IsFree(1, 0, 10, 2))
	assert.False(t, m.IsFree(1, 0, 10, 3))
	assert.False(t, m.IsFree(1, 0, 9, 1))
}

func TestNewAccordionGraphResolvesComponents(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "B"},
		{RoomID: 3, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "B"}},
	}
	g, err := NewAccordionGraph(rooms)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3}, g.PartnersOf(1))
	assert.ElementsMatch(t, []int{3}, g.PartnersOf(2))
	assert.ElementsMatch(t, []int{1, 2}, g.PartnersOf(3))
}

func TestNewAccordionGraphRejectsUnknownComponent(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "Ghost"}},
	}
	_, err := NewAccordionGraph(rooms)
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestNewAccordionGraphRejectsCombinedOfCombined(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "B"},
		{RoomID: 3, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "B"}},
		{RoomID: 4, Name: "A+B+C", IsCombined: true, ComponentRoomNames: []string{"A+B"}},
	}
	_, err := NewAccordionGraph(rooms)
	require.Error(t, err)
}

func TestNewAccordionGraphRejectsDuplicateRoomID(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 1, Name: "A-dup"},
	}
	_, err := NewAccordionGraph(rooms)
	require.Error(t, err)
}

func TestMarkBusyPropagatesToAccordionPartners(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "B"},
		{RoomID: 3, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "B"}},
	}
	g, err := NewAccordionGraph(rooms)
	require.NoError(t, err)

	m := seedRoomMatrix(map[RoomSlotKey]bool{
		{RoomID: 1, Day: 0, Slot: 0}: true,
		{RoomID: 2, Day: 0, Slot: 0}: true,
		{RoomID: 3, Day: 0, Slot: 0}: true,
	})

	markBusy(m, g, 1, 0, 0)
	assert.False(t, m.get(1, 0, 0))
	assert.False(t, m.get(3, 0, 0))
	assert.True(t, m.get(2, 0, 0))
}

func TestMarkBusyIsIdempotent(t *testing.T) {
	rooms := []Room{{RoomID: 1, Name: "A"}}
	g, err := NewAccordionGraph(rooms)
	require.NoError(t, err)
	m := seedRoomMatrix(map[RoomSlotKey]bool{{RoomID: 1, Day: 0, Slot: 0}: true})

	markBusy(m, g, 1, 0, 0)
	before := m.get(1, 0, 0)
	markBusy(m, g, 1, 0, 0)
	after := m.get(1, 0, 0)
	assert.Equal(t, before, after)
	assert.False(t, after)
}

func TestCheckInvariantC1DetectsDisagreement(t *testing.T) {
	rooms := []Room{
		{RoomID: 1, Name: "A"},
		{RoomID: 2, Name: "B"},
		{RoomID: 3, Name: "A+B", IsCombined: true, ComponentRoomNames: []string{"A", "B"}},
	}
	g, err := NewAccordionGraph(rooms)
	require.NoError(t, err)

	m := seedRoomMatrix(map[RoomSlotKey]bool{
		{RoomID: 1, Day: 0, Slot: 0}: true,
		{RoomID: 2, Day: 0, Slot: 0}: true,
	})
	m.set(3, 0, 0, false)

	err = checkInvariantC1(m, g, 1, 0, 0)
	require.Error(t, err)
	var violation *InternalInvariantViolation
	assert.ErrorAs(t, err, &violation)
}
