package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/dberrors"
	"github.com/yigit/unitutor/internal/pkg/logger"
)

var userColumns = []string{
	"id", "name", "surname", "email", "password",
	"profile_picture", "subjects", "instructions_count",
}

// UserRepository handles user database operations
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Password,
		&user.ProfilePicture, &user.Subjects, &user.InstructionsCount,
	)
}

func userByEmailQuery(email string) (string, []interface{}, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func usersWithSubjectsQuery() (string, []interface{}, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.NotEq{"subjects": nil}).
		OrderBy("id ASC").
		ToSql()
}

func insertUserQuery(user *models.User) (string, []interface{}, error) {
	return psql.Insert("users").
		Columns("name", "surname", "email", "password", "profile_picture", "subjects", "instructions_count").
		Values(user.Name, user.Surname, user.Email, user.Password, user.ProfilePicture, user.Subjects, user.InstructionsCount).
		Suffix("RETURNING id").
		ToSql()
}

// Create inserts a user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := insertUserQuery(user)
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintUserEmail) {
			return apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPersistence
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return nil
}

// GetByEmail returns the user with exactly this email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := userByEmailQuery(email)
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user := &models.User{}
	if err := scanUser(r.db.QueryRow(ctx, sql, args...), user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := psql.Select("1").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// GetWithSubjects returns every user whose subjects column is not null.
// Callers narrow the result to a particular slug in memory.
func (r *UserRepository) GetWithSubjects(ctx context.Context) ([]*models.User, error) {
	sql, args, err := usersWithSubjectsQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build users with subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing users with subjects query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := scanUser(rows, user); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
