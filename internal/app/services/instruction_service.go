package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/metrics"
)

// InstructionService defines the interface for instruction session operations
type InstructionService interface {
	ScheduleSession(ctx context.Context, studentEmail string, req *dto.ScheduleSessionRequest) error
	ListSessions(ctx context.Context) (*dto.InstructionSessionsResponse, error)
}

type instructionServiceImpl struct {
	sessionRepo InstructionSessionRepository
	userRepo    UserRepository
	metrics     metrics.Recorder
	logger      zerolog.Logger
}

// NewInstructionService creates a new instruction service instance
func NewInstructionService(sessionRepo InstructionSessionRepository, userRepo UserRepository, recorder metrics.Recorder, logger zerolog.Logger) InstructionService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &instructionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		metrics:     recorder,
		logger:      logger,
	}
}

// ScheduleSession records a session request from the student identified by email.
// The professor id is stored as given and overlapping requests are accepted.
func (s *instructionServiceImpl) ScheduleSession(ctx context.Context, studentEmail string, req *dto.ScheduleSessionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: session request is nil", apperrors.ErrValidationFailed)
	}
	if req.Date.IsZero() {
		return apperrors.NewValidationError("date", "date is required")
	}
	if req.ProfessorID == 0 {
		return apperrors.NewValidationError("professorId", "professorId is required")
	}

	if studentEmail == "" {
		return apperrors.ErrStudentNotFound
	}

	student, err := s.userRepo.GetByEmail(ctx, studentEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("failed to resolve student: %w", err)
	}

	session := &models.InstructionSession{
		// Stored as UTC at Postgres precision; the instant is unchanged
		DateTime:    req.Date.UTC().Truncate(time.Microsecond),
		ProfessorID: req.ProfessorID,
		StudentID:   student.ID,
		Status:      models.StatusRequested,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("failed to schedule instruction session: %w", err)
	}

	s.metrics.RecordSessionRequested()
	s.logger.Info().
		Int64("sessionID", session.ID).
		Int64("studentID", student.ID).
		Int64("professorID", session.ProfessorID).
		Msg("Instruction session requested")
	return nil
}

// ListSessions lists every session with only its time and professor
func (s *instructionServiceImpl) ListSessions(ctx context.Context) (*dto.InstructionSessionsResponse, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruction sessions: %w", err)
	}

	resp := &dto.InstructionSessionsResponse{
		Success:             true,
		InstructionSessions: make([]dto.InstructionSessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		resp.InstructionSessions = append(resp.InstructionSessions, dto.NewInstructionSessionResponse(session))
	}
	return resp, nil
}
