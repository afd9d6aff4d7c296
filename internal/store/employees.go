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

const employeeCols = `id, name, email, role, department, status, date_joined, created_at, updated_at`

// Employees is the pgx-backed employee store.
type Employees struct {
	pool *pgxpool.Pool
}

func NewEmployees(pool *pgxpool.Pool) *Employees {
	return &Employees{pool: pool}
}

// employeeListSQL builds the filtered list query. Results are ordered by id
// so pagination is deterministic and non-overlapping.
func employeeListSQL(f EmployeeFilter) (string, []any) {
	query := `SELECT ` + employeeCols + ` FROM employees WHERE 1=1`
	args := []any{}
	argIdx := 1

	if f.Status != nil {
		query += fmt.Sprintf(" AND status=$%d", argIdx)
		args = append(args, string(*f.Status))
		argIdx++
	}
	if f.Department != "" {
		query += fmt.Sprintf(" AND department=$%d", argIdx)
		args = append(args, f.Department)
		argIdx++
	}
	if f.Role != "" {
		query += fmt.Sprintf(" AND role=$%d", argIdx)
		args = append(args, f.Role)
		argIdx++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}
	query += " ORDER BY id"
	return limitOffset(query, args, f.Page, f.PageSize)
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &e.Department, &e.Status,
		&e.DateJoined, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Employees) List(ctx context.Context, f EmployeeFilter) ([]models.Employee, error) {
	query, args := employeeListSQL(f)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	list := make([]models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, *e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return list, nil
}

func (s *Employees) Get(ctx context.Context, id int64) (*models.EmployeeWithTasks, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+employeeCols+` FROM employees WHERE id=$1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "employee", ID: id}
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, status, priority, due_date
		FROM tasks WHERE employee_id=$1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get employee tasks: %w", err)
	}
	defer rows.Close()

	out := &models.EmployeeWithTasks{Employee: *e, Tasks: []models.TaskSummary{}}
	for rows.Next() {
		var ts models.TaskSummary
		var due *time.Time
		if err := rows.Scan(&ts.ID, &ts.Title, &ts.Status, &ts.Priority, &due); err != nil {
			return nil, fmt.Errorf("scan task summary: %w", err)
		}
		if due != nil {
			ts.DueDate = &models.Date{Time: *due}
		}
		out.Tasks = append(out.Tasks, ts)
	}
	return out, rows.Err()
}

func (s *Employees) Create(ctx context.Context, in models.NewEmployee) (*models.Employee, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO employees (name, email, role, department, status, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+employeeCols,
		in.Name, in.Email, in.Role, in.Department, string(in.Status), in.DateJoined)
	e, err := scanEmployee(row)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, &ConflictError{Message: fmt.Sprintf("employee with email %s already exists", in.Email)}
		}
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

// Update applies the merge set in one statement. updated_at is always
// refreshed, even for an empty change set.
func (s *Employees) Update(ctx context.Context, id int64, ch models.EmployeeChanges) (*models.Employee, error) {
	sets := []string{"updated_at=now()"}
	args := []any{}
	argIdx := 1

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}
	if ch.Name != nil {
		set("name", *ch.Name)
	}
	if ch.Email != nil {
		set("email", *ch.Email)
	}
	if ch.Role != nil {
		set("role", *ch.Role)
	}
	if ch.Department != nil {
		set("department", *ch.Department)
	}
	if ch.Status != nil {
		set("status", string(*ch.Status))
	}
	if ch.DateJoined != nil {
		set("date_joined", *ch.DateJoined)
	}

	query := "UPDATE employees SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE id=$%d RETURNING %s", argIdx, employeeCols)
	args = append(args, id)

	e, err := scanEmployee(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, &NotFoundError{Kind: "employee", ID: id}
		case pgErrCode(err) == pgUniqueViolation:
			return nil, &ConflictError{Message: fmt.Sprintf("employee with email %s already exists", *ch.Email)}
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// Delete removes the employee and every task it owns in one transaction, so
// a partial cascade is never observable.
func (s *Employees) Delete(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete employee: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE employee_id=$1`, id); err != nil {
		return fmt.Errorf("delete employee tasks: %w", err)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return &NotFoundError{Kind: "employee", ID: id}
	}
	return tx.Commit(ctx)
}
