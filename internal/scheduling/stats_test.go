package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatsComputesRateAndBuckets(t *testing.T) {
	teacher1 := 1
	placements := []Placement{
		{ClassID: 1, TeacherID: &teacher1},
	}
	unscheduled := []Unscheduled{
		{Class: Class{ClassID: 2}, Reason: ReasonNoRoomTimeSlot},
		{Class: Class{ClassID: 3}, Reason: ReasonNoAvailableTeacher},
	}

	stats := ReportStats(3, placements, unscheduled)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Scheduled)
	assert.Equal(t, 2, stats.Unscheduled)
	assert.InDelta(t, 1.0/3.0, stats.Rate, 1e-9)
	assert.Equal(t, 1, stats.UnscheduledByRoom)
	assert.Equal(t, 1, stats.UnscheduledByTeacher)
}

func TestReportStatsRateIsZeroWhenTotalIsZero(t *testing.T) {
	stats := ReportStats(0, nil, nil)
	assert.Equal(t, 0.0, stats.Rate)
}

func TestReportStatsConsistencyInvariant(t *testing.T) {
	teacher1 := 1
	placements := []Placement{{ClassID: 1, TeacherID: &teacher1}, {ClassID: 2}}
	unscheduled := []Unscheduled{{Class: Class{ClassID: 2}, Reason: ReasonNoAvailableTeacher}}

	stats := ReportStats(2, placements, unscheduled)
	assert.Equal(t, stats.Total, stats.Scheduled+stats.UnscheduledByRoom+stats.UnscheduledByTeacher)
}
