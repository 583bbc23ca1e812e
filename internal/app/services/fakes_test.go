package services

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
)

// memSubjectRepo is an in-memory SubjectRepository
type memSubjectRepo struct {
	mu        sync.Mutex
	subjects  []*models.Subject
	createErr error
}

func (r *memSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, s := range r.subjects {
		if s.URL == subject.URL {
			return apperrors.ErrSubjectURLExists
		}
	}
	subject.ID = int64(len(r.subjects) + 1)
	stored := *subject
	r.subjects = append(r.subjects, &stored)
	return nil
}

func (r *memSubjectRepo) GetByURL(_ context.Context, url string) (*models.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subjects {
		if s.URL == url {
			found := *s
			return &found, nil
		}
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (r *memSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Subject, len(r.subjects))
	copy(out, r.subjects)
	return out, nil
}

// memUserRepo is an in-memory UserRepository
type memUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) GetWithSubjects(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.User{}
	for _, u := range r.users {
		if u.Subjects != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(r.users) + 1)
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

// memSessionRepo is an in-memory InstructionSessionRepository
type memSessionRepo struct {
	mu        sync.Mutex
	sessions  []*models.InstructionSession
	createErr error
}

func (r *memSessionRepo) Create(_ context.Context, session *models.InstructionSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	session.ID = int64(len(r.sessions) + 1)
	stored := *session
	r.sessions = append(r.sessions, &stored)
	return nil
}

func (r *memSessionRepo) GetAll(_ context.Context) ([]*models.InstructionSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.InstructionSession, len(r.sessions))
	copy(out, r.sessions)
	return out, nil
}

// countingRecorder counts domain events
type countingRecorder struct {
	subjects int
	sessions int
}

func (c *countingRecorder) RecordSubjectCreated() { c.subjects++ }
func (c *countingRecorder) RecordSessionRequested() { c.sessions++ }
func (c *countingRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
