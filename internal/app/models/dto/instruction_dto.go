package dto

import (
	"time"

	"github.com/yigit/unitutor/internal/app/models"
)

// ScheduleSessionRequest is the body of POST /api/instructions
type ScheduleSessionRequest struct {
	Date        time.Time `json:"date" binding:"required" example:"2024-05-10T14:00:00Z"`
	ProfessorID int64     `json:"professorId" binding:"required" example:"2"`
}

// InstructionSessionResponse lists only the time and professor of a session
type InstructionSessionResponse struct {
	DateTime    time.Time `json:"dateTime" example:"2024-05-10T14:00:00Z"`
	ProfessorID int64     `json:"professorId" example:"2"`
}

// InstructionSessionsResponse is returned by GET /api/instructions
type InstructionSessionsResponse struct {
	Success             bool                         `json:"success" example:"true"`
	InstructionSessions []InstructionSessionResponse `json:"instructionSessions"`
}

// NewInstructionSessionResponse projects a session model
func NewInstructionSessionResponse(s *models.InstructionSession) InstructionSessionResponse {
	return InstructionSessionResponse{
		DateTime:    s.DateTime,
		ProfessorID: s.ProfessorID,
	}
}
