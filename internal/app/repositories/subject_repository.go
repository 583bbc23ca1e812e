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

var subjectColumns = []string{"id", "title", "url", "description"}

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db Querier
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db Querier) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func insertSubjectQuery(subject *models.Subject) (string, []interface{}, error) {
	return psql.Insert("subjects").
		Columns("title", "url", "description").
		Values(subject.Title, subject.URL, subject.Description).
		Suffix("RETURNING id").
		ToSql()
}

func subjectByURLQuery(url string) (string, []interface{}, error) {
	return psql.Select(subjectColumns...).
		From("subjects").
		Where(squirrel.Eq{"url": url}).
		Limit(1).
		ToSql()
}

func allSubjectsQuery() (string, []interface{}, error) {
	return psql.Select(subjectColumns...).
		From("subjects").
		OrderBy("id ASC").
		ToSql()
}

// Create inserts a subject and sets its generated ID
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	sql, args, err := insertSubjectQuery(subject)
	if err != nil {
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintSubjectURL) {
			return apperrors.ErrSubjectURLExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPersistence
		}
		logger.Error().Err(err).Str("url", subject.URL).Msg("Error executing create subject query")
		return fmt.Errorf("error creating subject: %w", err)
	}

	subject.ID = id
	return nil
}

// GetByURL returns the subject whose url equals the slug exactly
func (r *SubjectRepository) GetByURL(ctx context.Context, url string) (*models.Subject, error) {
	sql, args, err := subjectByURLQuery(url)
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Title, &subject.URL, &subject.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Str("url", url).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by url: %w", err)
	}

	return subject, nil
}

// GetAll returns every subject in insertion order
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := allSubjectsQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Title, &subject.URL, &subject.Description); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}
