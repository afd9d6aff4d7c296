package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"prothink-api/internal/models"
)

// Pagination bounds, enforced at the API boundary and assumed here.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// NotFoundError reports an id that did not resolve to a row.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// ConflictError reports a uniqueness or referential-integrity violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// EmployeeFilter carries the optional list predicates plus pagination.
type EmployeeFilter struct {
	Status     *models.EmployeeStatus
	Department string
	Role       string
	Search     string // case-insensitive substring over name and email
	Page       int
	PageSize   int
}

// TaskFilter carries the optional list predicates plus pagination.
type TaskFilter struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	EmployeeID *int64
	DueBefore  *models.Date
	DueAfter   *models.Date
	Page       int
	PageSize   int
}

type EmployeeStore interface {
	List(ctx context.Context, f EmployeeFilter) ([]models.Employee, error)
	Get(ctx context.Context, id int64) (*models.EmployeeWithTasks, error)
	Create(ctx context.Context, in models.NewEmployee) (*models.Employee, error)
	Update(ctx context.Context, id int64, ch models.EmployeeChanges) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type TaskStore interface {
	List(ctx context.Context, f TaskFilter) ([]models.TaskWithEmployee, error)
	Get(ctx context.Context, id int64) (*models.TaskWithEmployee, error)
	Create(ctx context.Context, in models.NewTask) (*models.Task, error)
	Update(ctx context.Context, id int64, ch models.TaskChanges) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, id, employeeID int64) (*models.Task, error)
	Unassign(ctx context.Context, id int64) (*models.Task, error)
}

// pgErrCode extracts the Postgres error code, empty for non-pg errors.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// limitOffset appends the pagination clause shared by both list queries.
func limitOffset(query string, args []any, page, pageSize int) (string, []any) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)
	return query, args
}
