package dto

// GenerateRoomTimeRequest starts a room-time scheduling run for a term.
type GenerateRoomTimeRequest struct {
	TermID         string `json:"termId" validate:"required" binding:"required"`
	AssignTeachers bool   `json:"assignTeachers"`
}

// RoomTimePlacement is one scheduled class in a room-time proposal.
type RoomTimePlacement struct {
	ClassID   string  `json:"classId"`
	RoomID    string  `json:"roomId"`
	DayOfWeek int     `json:"dayOfWeek"`
	StartSlot int     `json:"startSlot"`
	EndSlot   int     `json:"endSlot"`
	TeacherID *string `json:"teacherId,omitempty"`
}

// RoomTimeUnscheduled is a class the run could not place or assign.
type RoomTimeUnscheduled struct {
	ClassID string `json:"classId"`
	Reason  string `json:"reason"`
}

// RoomTimeStats mirrors scheduling.Stats for the API response.
type RoomTimeStats struct {
	Total                int     `json:"total"`
	Scheduled            int     `json:"scheduled"`
	Unscheduled          int     `json:"unscheduled"`
	Rate                 float64 `json:"rate"`
	UnscheduledByRoom    int     `json:"unscheduledByRoom"`
	UnscheduledByTeacher int     `json:"unscheduledByTeacher"`
}

// RoomTimeProposalResponse is the generate/assign-teachers response body.
type RoomTimeProposalResponse struct {
	ProposalID  string                `json:"proposalId"`
	TermID      string                `json:"termId"`
	Scheduled   []RoomTimePlacement   `json:"scheduled"`
	Unscheduled []RoomTimeUnscheduled `json:"unscheduled"`
	Stats       RoomTimeStats         `json:"stats"`
}

// AssignRoomTimeTeachersRequest names the cached proposal to assign teachers for.
type AssignRoomTimeTeachersRequest struct {
	ProposalID string `json:"proposalId" validate:"required" uri:"proposalId"`
}

// SaveRoomTimeRequest names the cached proposal to persist.
type SaveRoomTimeRequest struct {
	ProposalID string `json:"proposalId" validate:"required" uri:"proposalId"`
}

// SaveRoomTimeResponse confirms the persisted schedule.
type SaveRoomTimeResponse struct {
	ScheduleID string `json:"scheduleId"`
	TermID     string `json:"termId"`
}

// RoomTimeAuditResponse lists conflicts re-derived from a saved schedule.
type RoomTimeAuditResponse struct {
	ScheduleID string               `json:"scheduleId"`
	Conflicts  []RoomTimeAuditEntry `json:"conflicts"`
}

// RoomTimeAuditEntry is one conflicting pair of placements.
type RoomTimeAuditEntry struct {
	ClassAID  string `json:"classAId"`
	ClassBID  string `json:"classBId"`
	RoomAID   string `json:"roomAId"`
	RoomBID   string `json:"roomBId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartA    int    `json:"startA"`
	EndA      int    `json:"endA"`
	StartB    int    `json:"startB"`
	EndB      int    `json:"endB"`
}
