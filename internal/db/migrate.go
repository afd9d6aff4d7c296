package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if it does not exist. Safe to run on every
// startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id          bigserial PRIMARY KEY,
			name        text NOT NULL,
			email       text NOT NULL UNIQUE,
			role        text NOT NULL,
			department  text NOT NULL,
			status      text NOT NULL DEFAULT 'active',
			date_joined timestamptz NOT NULL DEFAULT now(),
			created_at  timestamptz NOT NULL DEFAULT now(),
			updated_at  timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id          bigserial PRIMARY KEY,
			title       text NOT NULL,
			description text,
			status      text NOT NULL DEFAULT 'todo',
			priority    text NOT NULL DEFAULT 'medium',
			due_date    date,
			employee_id bigint REFERENCES employees(id) ON DELETE CASCADE,
			created_at  timestamptz NOT NULL DEFAULT now(),
			updated_at  timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_employee_id ON tasks(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
	}
	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
