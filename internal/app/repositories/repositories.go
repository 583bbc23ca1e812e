package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of pgxpool.Pool (and pgx.Tx) the repositories use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Unique constraint names created by migrations/001_init.sql
const (
	constraintSubjectURL = "subjects_url_key"
	constraintUserEmail  = "users_email_key"
)

// psql is the statement builder shared by all repositories
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	SubjectRepository            *SubjectRepository
	UserRepository               *UserRepository
	InstructionSessionRepository *InstructionSessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SubjectRepository:            NewSubjectRepository(db),
		UserRepository:               NewUserRepository(db),
		InstructionSessionRepository: NewInstructionSessionRepository(db),
	}
}
