package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prothink-api/internal/models"
)

const taskCols = `t.id, t.title, t.description, t.status, t.priority, t.due_date, t.employee_id, t.created_at, t.updated_at`

const taskColsBare = `id, title, description, status, priority, due_date, employee_id, created_at, updated_at`

// Tasks is the pgx-backed task store.
type Tasks struct {
	pool *pgxpool.Pool
}

func NewTasks(pool *pgxpool.Pool) *Tasks {
	return &Tasks{pool: pool}
}

// taskListSQL builds the filtered list query, joining the assigned employee
// for the embedded summary. Ordered by id for deterministic pagination.
func taskListSQL(f TaskFilter) (string, []any) {
	query := `SELECT ` + taskCols + `, e.id, e.name, e.email, e.department
		FROM tasks t LEFT JOIN employees e ON e.id = t.employee_id
		WHERE 1=1`
	args := []any{}
	argIdx := 1

	if f.Status != nil {
		query += fmt.Sprintf(" AND t.status=$%d", argIdx)
		args = append(args, string(*f.Status))
		argIdx++
	}
	if f.Priority != nil {
		query += fmt.Sprintf(" AND t.priority=$%d", argIdx)
		args = append(args, string(*f.Priority))
		argIdx++
	}
	if f.EmployeeID != nil {
		query += fmt.Sprintf(" AND t.employee_id=$%d", argIdx)
		args = append(args, *f.EmployeeID)
		argIdx++
	}
	if f.DueBefore != nil {
		query += fmt.Sprintf(" AND t.due_date <= $%d", argIdx)
		args = append(args, f.DueBefore.Time)
		argIdx++
	}
	if f.DueAfter != nil {
		query += fmt.Sprintf(" AND t.due_date >= $%d", argIdx)
		args = append(args, f.DueAfter.Time)
		argIdx++
	}
	query += " ORDER BY t.id"
	return limitOffset(query, args, f.Page, f.PageSize)
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	var due *time.Time
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&due, &t.EmployeeID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if due != nil {
		t.DueDate = &models.Date{Time: *due}
	}
	return &t, nil
}

func scanTaskWithEmployee(row pgx.Row) (*models.TaskWithEmployee, error) {
	var t models.Task
	var due *time.Time
	var empID *int64
	var empName, empEmail, empDept *string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&due, &t.EmployeeID, &t.CreatedAt, &t.UpdatedAt,
		&empID, &empName, &empEmail, &empDept)
	if err != nil {
		return nil, err
	}
	if due != nil {
		t.DueDate = &models.Date{Time: *due}
	}
	out := &models.TaskWithEmployee{Task: t}
	if empID != nil {
		out.Employee = &models.EmployeeSummary{
			ID: *empID, Name: *empName, Email: *empEmail, Department: *empDept,
		}
	}
	return out, nil
}

func (s *Tasks) List(ctx context.Context, f TaskFilter) ([]models.TaskWithEmployee, error) {
	query, args := taskListSQL(f)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	list := make([]models.TaskWithEmployee, 0)
	for rows.Next() {
		t, err := scanTaskWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, *t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return list, nil
}

func (s *Tasks) Get(ctx context.Context, id int64) (*models.TaskWithEmployee, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+taskCols+`, e.id, e.name, e.email, e.department
		FROM tasks t LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.id=$1`, id)
	t, err := scanTaskWithEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "task", ID: id}
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// duePtr unwraps the date for pgx encoding; Date itself is a JSON type.
func duePtr(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func (s *Tasks) Create(ctx context.Context, in models.NewTask) (*models.Task, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, status, priority, due_date, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+taskColsBare,
		in.Title, in.Description, string(in.Status), string(in.Priority), duePtr(in.DueDate), in.EmployeeID)
	t, err := scanTask(row)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, &ConflictError{Message: fmt.Sprintf("employee with ID %d not found", *in.EmployeeID)}
		}
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// Update applies the merge set in one statement; explicit nulls clear the
// nullable columns. updated_at is always refreshed.
func (s *Tasks) Update(ctx context.Context, id int64, ch models.TaskChanges) (*models.Task, error) {
	sets := []string{"updated_at=now()"}
	args := []any{}
	argIdx := 1

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}
	if ch.Title != nil {
		set("title", *ch.Title)
	}
	if ch.Status != nil {
		set("status", string(*ch.Status))
	}
	if ch.Priority != nil {
		set("priority", string(*ch.Priority))
	}
	if ch.Description.Present {
		set("description", ch.Description.Ptr())
	}
	if ch.DueDate.Present {
		var due *time.Time
		if ch.DueDate.Valid {
			d := ch.DueDate.Value.Time
			due = &d
		}
		set("due_date", due)
	}
	if ch.EmployeeID.Present {
		set("employee_id", ch.EmployeeID.Ptr())
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE id=$%d RETURNING %s", argIdx, taskColsBare)
	args = append(args, id)

	t, err := scanTask(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, &NotFoundError{Kind: "task", ID: id}
		case pgErrCode(err) == pgForeignKeyViolation:
			return nil, &ConflictError{Message: fmt.Sprintf("employee with ID %d not found", ch.EmployeeID.Value)}
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *Tasks) Delete(ctx context.Context, id int64) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return &NotFoundError{Kind: "task", ID: id}
	}
	return nil
}

// Assign sets employee_id, relying on the foreign key to reject a
// nonexistent employee without modifying the task.
func (s *Tasks) Assign(ctx context.Context, id, employeeID int64) (*models.Task, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE tasks SET employee_id=$1, updated_at=now()
		WHERE id=$2
		RETURNING `+taskColsBare, employeeID, id)
	t, err := scanTask(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, &NotFoundError{Kind: "task", ID: id}
		case pgErrCode(err) == pgForeignKeyViolation:
			return nil, &ConflictError{Message: fmt.Sprintf("employee with ID %d not found", employeeID)}
		}
		return nil, fmt.Errorf("assign task: %w", err)
	}
	return t, nil
}

func (s *Tasks) Unassign(ctx context.Context, id int64) (*models.Task, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE tasks SET employee_id=NULL, updated_at=now()
		WHERE id=$1
		RETURNING `+taskColsBare, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "task", ID: id}
		}
		return nil, fmt.Errorf("unassign task: %w", err)
	}
	return t, nil
}
