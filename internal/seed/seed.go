package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/auth"
)

// SubjectCreator is satisfied by *repositories.SubjectRepository
type SubjectCreator interface {
	Create(ctx context.Context, subject *models.Subject) error
}

// UserCreator is satisfied by *repositories.UserRepository
type UserCreator interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

// DemoProfessorEmail is the login of the seeded professor
const DemoProfessorEmail = "ivana.horvat@unitutor.app"

// demoProfessorPassword is only meant for local development
const demoProfessorPassword = "Profesor123"

// DefaultSubjects are created when seeding is enabled
var DefaultSubjects = []models.Subject{
	{Title: "Algebra", URL: "algebra", Description: "Vector spaces, matrices and linear maps."},
	{Title: "Physics", URL: "physics", Description: "Mechanics, waves and thermodynamics."},
	{Title: "Biochemistry", URL: "biochem", Description: "Chemistry of living organisms."},
	{Title: "Programming", URL: "programming", Description: "Introduction to programming in Go."},
}

// CreateDefaultData creates the demo subjects and one professor if they don't exist.
// Each item is attempted independently and every failure is returned joined.
func CreateDefaultData(ctx context.Context, subjects SubjectCreator, users UserCreator, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (subjects/professor)...")
	var finalErr error

	created := 0
	for _, s := range DefaultSubjects {
		subject := s
		err := subjects.Create(ctx, &subject)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrSubjectURLExists):
			lgr.Debug().Str("url", subject.URL).Msg("Subject already exists, skipping")
		default:
			lgr.Error().Err(err).Str("url", subject.URL).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
		}
	}
	lgr.Info().Int("created", created).Msg("Default subjects checked")

	exists, err := users.EmailExists(ctx, DemoProfessorEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if demo professor exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Demo professor already exists, skipping creation")
		return finalErr
	}

	hashedPassword, err := auth.HashPassword(demoProfessorPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing demo professor password")
		return errors.Join(finalErr, err)
	}

	subjectList := "algebra,physics"
	instructions := 0
	professor := &models.User{
		Name:              "Ivana",
		Surname:           "Horvat",
		Email:             DemoProfessorEmail,
		Password:          hashedPassword,
		ProfilePicture:    "https://cdn.unitutor.app/avatars/ivana.png",
		Subjects:          &subjectList,
		InstructionsCount: &instructions,
	}
	if err := users.Create(ctx, professor); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating demo professor")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("professorID", professor.ID).Msg("Demo professor created")
	return finalErr
}
