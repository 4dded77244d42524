package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceScoreFirstMatchOnly(t *testing.T) {
	c := Class{ClassID: 1, DurationSlots: 1}
	cand := Candidate{RoomID: 7, Day: 0, StartSlot: 0}
	prefs := []Preference{
		{ClassID: 1, Kind: PrefRoom, Value: 7, Weight: 2},
		{ClassID: 1, Kind: PrefRoom, Value: 7, Weight: 99},
	}
	assert.Equal(t, 20.0, preferenceScore(cand, c, prefs))
}

func TestPreferenceScoreCombinesRoomDayTime(t *testing.T) {
	c := Class{ClassID: 1, DurationSlots: 2}
	cand := Candidate{RoomID: 1, Day: 3, StartSlot: 10}
	prefs := []Preference{
		{ClassID: 1, Kind: PrefRoom, Value: 1, Weight: 1},
		{ClassID: 1, Kind: PrefDay, Value: 3, Weight: 1},
		{ClassID: 1, Kind: PrefTime, Value: 11, Weight: 1},
	}
	assert.Equal(t, 10.0+8.0+5.0, preferenceScore(cand, c, prefs))
}

func TestRoomBalanceScoreFavorsLeastUsedRoom(t *testing.T) {
	placed := []Placement{
		{RoomID: 1}, {RoomID: 1}, {RoomID: 2},
	}
	assert.Greater(t, roomBalanceScore(2, placed), roomBalanceScore(1, placed))
}

func TestContinuityScoreRewardsAdjacentSameStyle(t *testing.T) {
	c := Class{ClassID: 2, Style: "ballet", Level: 2, DurationSlots: 2}
	classByID := map[int]Class{
		1: {ClassID: 1, Style: "ballet", Level: 1},
	}
	placed := []Placement{
		{ClassID: 1, RoomID: 5, Day: 0, StartSlot: 0, EndSlot: 4},
	}
	cand := Candidate{RoomID: 5, Day: 0, StartSlot: 4}
	score := continuityScore(cand, c, placed, classByID)
	assert.Equal(t, 8.0, score)
}

func TestContinuityScoreIgnoresDifferentRoomOrDay(t *testing.T) {
	c := Class{ClassID: 2, Style: "ballet", Level: 2, DurationSlots: 2}
	classByID := map[int]Class{1: {ClassID: 1, Style: "ballet", Level: 1}}
	placed := []Placement{
		{ClassID: 1, RoomID: 6, Day: 0, StartSlot: 0, EndSlot: 4},
	}
	cand := Candidate{RoomID: 5, Day: 0, StartSlot: 4}
	assert.Equal(t, 0.0, continuityScore(cand, c, placed, classByID))
}
