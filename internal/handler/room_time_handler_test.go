package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/scheduling"
	"github.com/briarwood/studio-scheduler/internal/service"
)

type roomTimeSchedulerMock struct {
	generateTermID string
	proposal       service.RoomTimeProposal
	generateErr    error
	saveSchedule   *models.SemesterSchedule
	saveErr        error
	auditFindings  []service.AuditFinding
	auditErr       error
	pdfBytes       []byte
	pdfErr         error
}

func (m *roomTimeSchedulerMock) Generate(ctx context.Context, termID string, assignTeachers bool) (service.RoomTimeProposal, error) {
	m.generateTermID = termID
	return m.proposal, m.generateErr
}

func (m *roomTimeSchedulerMock) AssignTeachers(ctx context.Context, proposalID string) (service.RoomTimeProposal, error) {
	return m.proposal, m.generateErr
}

func (m *roomTimeSchedulerMock) Save(ctx context.Context, proposalID string) (*models.SemesterSchedule, error) {
	return m.saveSchedule, m.saveErr
}

func (m *roomTimeSchedulerMock) GetSlots(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error) {
	return nil, nil
}

func (m *roomTimeSchedulerMock) Audit(ctx context.Context, scheduleID string) ([]service.AuditFinding, error) {
	return m.auditFindings, m.auditErr
}

func (m *roomTimeSchedulerMock) ExportPDF(ctx context.Context, scheduleID string) ([]byte, error) {
	return m.pdfBytes, m.pdfErr
}

func TestRoomTimeHandlerGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &roomTimeSchedulerMock{
		proposal: service.RoomTimeProposal{
			ProposalID: "proposal-1",
			TermID:     "term-1",
			Output: scheduling.Output{
				Stats: scheduling.Stats{Total: 0, Scheduled: 0, Unscheduled: 0},
			},
		},
	}
	handler := &RoomTimeHandler{service: mock}
	payload := []byte(`{"termId":"term-1","assignTeachers":false}`)
	req, _ := http.NewRequest(http.MethodPost, "/schedule/room-time/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "term-1", mock.generateTermID)
}

func TestRoomTimeHandlerGenerateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &RoomTimeHandler{service: &roomTimeSchedulerMock{}}
	req, _ := http.NewRequest(http.MethodPost, "/schedule/room-time/generate", bytes.NewReader([]byte(`{"termId":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomTimeHandlerSaveSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &roomTimeSchedulerMock{
		saveSchedule: &models.SemesterSchedule{ID: "sched-1", TermID: "term-1"},
	}
	handler := &RoomTimeHandler{service: mock}
	req, _ := http.NewRequest(http.MethodPost, "/schedule/room-time/proposal-1/save", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "proposal-1"}}

	handler.Save(c)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestRoomTimeHandlerSavePropagatesError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &roomTimeSchedulerMock{saveErr: errors.New("proposal not found")}
	handler := &RoomTimeHandler{service: mock}
	req, _ := http.NewRequest(http.MethodPost, "/schedule/room-time/missing/save", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Save(c)

	require.NotEqual(t, http.StatusCreated, w.Code)
}

func TestRoomTimeHandlerAuditSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &roomTimeSchedulerMock{
		auditFindings: []service.AuditFinding{
			{ClassAID: "c1", ClassBID: "c2", RoomAID: "r1", RoomBID: "r1", DayOfWeek: 1, StartA: 0, EndA: 4, StartB: 2, EndB: 6},
		},
	}
	handler := &RoomTimeHandler{service: mock}
	req, _ := http.NewRequest(http.MethodGet, "/schedule/room-time/sched-1/audit", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "sched-1"}}

	handler.Audit(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "c1")
}
