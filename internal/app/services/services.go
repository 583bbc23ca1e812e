package services

import (
	"context"

	"github.com/yigit/unitutor/internal/app/models"
)

// SubjectRepository is the persistence the subject service needs
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByURL(ctx context.Context, url string) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
}

// UserRepository is the persistence the subject, instruction and auth services need
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetWithSubjects(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// InstructionSessionRepository is the persistence the instruction service needs
type InstructionSessionRepository interface {
	Create(ctx context.Context, session *models.InstructionSession) error
	GetAll(ctx context.Context) ([]*models.InstructionSession, error)
}
