package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/metrics"
	"github.com/yigit/unitutor/internal/pkg/validation"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) error
	GetSubjectByURL(ctx context.Context, url string) (*dto.SubjectDetailResponse, error)
	GetAllSubjects(ctx context.Context) (*dto.SubjectsResponse, error)
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo SubjectRepository
	userRepo    UserRepository
	metrics     metrics.Recorder
	logger      zerolog.Logger
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectRepository, userRepo UserRepository, recorder metrics.Recorder, logger zerolog.Logger) SubjectService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
		metrics:     recorder,
		logger:      logger,
	}
}

// validateSubject checks the required fields that binding may have let through as whitespace
func validateSubject(req *dto.CreateSubjectRequest) error {
	if req == nil {
		return fmt.Errorf("%w: subject is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.URL) == "" {
		return apperrors.NewValidationError("url", "url is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("description", "description is required")
	}
	return nil
}

// CreateSubject stores a new subject
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) error {
	if err := validateSubject(req); err != nil {
		return err
	}

	if !validation.IsCanonicalSlug(req.URL) {
		s.logger.Warn().Str("url", req.URL).Msg("Subject url is not a lowercase slug")
	}

	subject := &models.Subject{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}

	s.metrics.RecordSubjectCreated()
	s.logger.Info().Int64("subjectID", subject.ID).Str("url", subject.URL).Msg("Subject created")
	return nil
}

// GetSubjectByURL returns a subject and every professor whose subjects mention its slug
func (s *subjectServiceImpl) GetSubjectByURL(ctx context.Context, url string) (*dto.SubjectDetailResponse, error) {
	subject, err := s.subjectRepo.GetByURL(ctx, url)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetWithSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load professors: %w", err)
	}

	professors := make([]dto.ProfessorResponse, 0, len(users))
	for _, u := range users {
		if u.Teaches(subject.URL) {
			professors = append(professors, dto.NewProfessorResponse(u))
		}
	}

	return &dto.SubjectDetailResponse{
		Success:    true,
		Subject:    dto.NewSubjectResponse(subject),
		Professors: professors,
		Message:    "Subject found.",
	}, nil
}

// GetAllSubjects lists every subject in storage order
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) (*dto.SubjectsResponse, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	resp := &dto.SubjectsResponse{
		Success:  true,
		Subjects: make([]dto.SubjectResponse, 0, len(subjects)),
	}
	for _, subject := range subjects {
		resp.Subjects = append(resp.Subjects, dto.NewSubjectResponse(subject))
	}
	return resp, nil
}
