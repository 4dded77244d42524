package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/briarwood/studio-scheduler/internal/dto"
	"github.com/briarwood/studio-scheduler/internal/middleware"
	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/service"
	appErrors "github.com/briarwood/studio-scheduler/pkg/errors"
	"github.com/briarwood/studio-scheduler/pkg/response"
)

type roomTimeScheduler interface {
	Generate(ctx context.Context, termID string, assignTeachers bool) (service.RoomTimeProposal, error)
	AssignTeachers(ctx context.Context, proposalID string) (service.RoomTimeProposal, error)
	Save(ctx context.Context, proposalID string) (*models.SemesterSchedule, error)
	GetSlots(ctx context.Context, scheduleID string) ([]models.RoomTimeSlot, error)
	Audit(ctx context.Context, scheduleID string) ([]service.AuditFinding, error)
	ExportPDF(ctx context.Context, scheduleID string) ([]byte, error)
}

// RoomTimeHandler exposes the room/time/teacher scheduler endpoints.
type RoomTimeHandler struct {
	service roomTimeScheduler
}

// NewRoomTimeHandler constructs the handler.
func NewRoomTimeHandler(svc *service.RoomTimeService) *RoomTimeHandler {
	return &RoomTimeHandler{service: svc}
}

// Generate godoc
// @Summary Generate a room-time proposal for a term
// @Description Runs the two-phase room/time then optional teacher-assignment scheduler over a term's studio classes.
// @Tags RoomTimeScheduler
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRoomTimeRequest true "Generate payload"
// @Success 200 {object} response.Envelope
// @Router /schedule/room-time/generate [post]
func (h *RoomTimeHandler) Generate(c *gin.Context) {
	var req dto.GenerateRoomTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	proposal, err := h.service.Generate(c.Request.Context(), req.TermID, req.AssignTeachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toProposalResponse(proposal), nil, middleware.ExtractMeta(c))
}

// AssignTeachers godoc
// @Summary Run teacher assignment over a cached proposal
// @Tags RoomTimeScheduler
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.Envelope
// @Router /schedule/room-time/{id}/assign-teachers [post]
func (h *RoomTimeHandler) AssignTeachers(c *gin.Context) {
	proposalID := c.Param("id")
	proposal, err := h.service.AssignTeachers(c.Request.Context(), proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toProposalResponse(proposal), nil)
}

// Save godoc
// @Summary Persist a cached room-time proposal as a semester schedule
// @Tags RoomTimeScheduler
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 201 {object} response.Envelope
// @Router /schedule/room-time/{id}/save [post]
func (h *RoomTimeHandler) Save(c *gin.Context) {
	proposalID := c.Param("id")
	schedule, err := h.service.Save(c.Request.Context(), proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SaveRoomTimeResponse{ScheduleID: schedule.ID, TermID: schedule.TermID})
}

// ExportPDF godoc
// @Summary Export a saved schedule as a printable PDF grid
// @Tags RoomTimeScheduler
// @Produce application/pdf
// @Param id path string true "Semester schedule ID"
// @Success 200 {file} binary
// @Router /schedule/room-time/{id}/export.pdf [get]
func (h *RoomTimeHandler) ExportPDF(c *gin.Context) {
	scheduleID := c.Param("id")
	payload, err := h.service.ExportPDF(c.Request.Context(), scheduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"schedule-%s.pdf\"", scheduleID))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// Audit godoc
// @Summary Re-derive room/time conflicts from a saved schedule
// @Tags RoomTimeScheduler
// @Produce json
// @Param id path string true "Semester schedule ID"
// @Success 200 {object} response.Envelope
// @Router /schedule/room-time/{id}/audit [get]
func (h *RoomTimeHandler) Audit(c *gin.Context) {
	scheduleID := c.Param("id")
	findings, err := h.service.Audit(c.Request.Context(), scheduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries := make([]dto.RoomTimeAuditEntry, 0, len(findings))
	for _, f := range findings {
		entries = append(entries, dto.RoomTimeAuditEntry{
			ClassAID:  f.ClassAID,
			ClassBID:  f.ClassBID,
			RoomAID:   f.RoomAID,
			RoomBID:   f.RoomBID,
			DayOfWeek: f.DayOfWeek,
			StartA:    f.StartA,
			EndA:      f.EndA,
			StartB:    f.StartB,
			EndB:      f.EndB,
		})
	}
	response.JSON(c, http.StatusOK, dto.RoomTimeAuditResponse{ScheduleID: scheduleID, Conflicts: entries}, nil)
}

func toProposalResponse(p service.RoomTimeProposal) dto.RoomTimeProposalResponse {
	scheduled := make([]dto.RoomTimePlacement, 0, len(p.Output.Scheduled))
	for _, placement := range p.Output.Scheduled {
		classID, _ := p.ClassTable.ExtOf(placement.ClassID)
		roomID, _ := p.RoomTable.ExtOf(placement.RoomID)
		item := dto.RoomTimePlacement{
			ClassID:   classID,
			RoomID:    roomID,
			DayOfWeek: int(placement.Day),
			StartSlot: int(placement.StartSlot),
			EndSlot:   int(placement.EndSlot),
		}
		if placement.TeacherID != nil && p.TeacherTable != nil {
			if teacherExtID, ok := p.TeacherTable.ExtOf(*placement.TeacherID); ok {
				item.TeacherID = &teacherExtID
			}
		}
		scheduled = append(scheduled, item)
	}

	unscheduled := make([]dto.RoomTimeUnscheduled, 0, len(p.Output.Unscheduled))
	for _, u := range p.Output.Unscheduled {
		classID, _ := p.ClassTable.ExtOf(u.Class.ClassID)
		unscheduled = append(unscheduled, dto.RoomTimeUnscheduled{ClassID: classID, Reason: string(u.Reason)})
	}

	return dto.RoomTimeProposalResponse{
		ProposalID:  p.ProposalID,
		TermID:      p.TermID,
		Scheduled:   scheduled,
		Unscheduled: unscheduled,
		Stats: dto.RoomTimeStats{
			Total:                p.Output.Stats.Total,
			Scheduled:            p.Output.Stats.Scheduled,
			Unscheduled:          p.Output.Stats.Unscheduled,
			Rate:                 p.Output.Stats.Rate,
			UnscheduledByRoom:    p.Output.Stats.UnscheduledByRoom,
			UnscheduledByTeacher: p.Output.Stats.UnscheduledByTeacher,
		},
	}
}
