package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/logger"
)

// InstructionSessionRepository handles instruction session database operations
type InstructionSessionRepository struct {
	db Querier
}

// NewInstructionSessionRepository creates a new InstructionSessionRepository
func NewInstructionSessionRepository(db Querier) *InstructionSessionRepository {
	return &InstructionSessionRepository{db: db}
}

func insertSessionQuery(session *models.InstructionSession) (string, []interface{}, error) {
	return psql.Insert("instruction_sessions").
		Columns("date_time", "professor_id", "student_id", "status").
		Values(session.DateTime, session.ProfessorID, session.StudentID, session.Status).
		Suffix("RETURNING id").
		ToSql()
}

func allSessionsQuery() (string, []interface{}, error) {
	return psql.Select("id", "date_time", "professor_id", "student_id", "status").
		From("instruction_sessions").
		OrderBy("id ASC").
		ToSql()
}

// Create inserts a session and sets its generated ID.
// Overlapping sessions for the same professor are not rejected.
func (r *InstructionSessionRepository) Create(ctx context.Context, session *models.InstructionSession) error {
	sql, args, err := insertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPersistence
		}
		logger.Error().Err(err).
			Int64("professorID", session.ProfessorID).
			Int64("studentID", session.StudentID).
			Msg("Error executing create session query")
		return fmt.Errorf("error creating instruction session: %w", err)
	}

	session.ID = id
	return nil
}

// GetAll returns every session in insertion order
func (r *InstructionSessionRepository) GetAll(ctx context.Context) ([]*models.InstructionSession, error) {
	sql, args, err := allSessionsQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all sessions query")
		return nil, fmt.Errorf("error querying instruction sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.InstructionSession{}
	for rows.Next() {
		s := &models.InstructionSession{}
		if err := rows.Scan(&s.ID, &s.DateTime, &s.ProfessorID, &s.StudentID, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning instruction session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instruction session rows: %w", err)
	}

	return sessions, nil
}
