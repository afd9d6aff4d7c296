package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEmployee struct {
	name, email, role, department, status string

	joinedDaysAgo int
}

type seedTask struct {
	title, description, status, priority string

	dueInDays int
	assignee  int // index into the seed employees, -1 for unassigned
}

var seedEmployees = []seedEmployee{
	{"Alice Johnson", "alice.johnson@prothink.com", "Engineering Manager", "Engineering", "active", 365},
	{"Bob Smith", "bob.smith@prothink.com", "Senior Developer", "Engineering", "active", 180},
	{"Carol White", "carol.white@prothink.com", "Product Manager", "Product", "active", 270},
	{"David Brown", "david.brown@prothink.com", "HR Specialist", "HR", "active", 90},
	{"Eve Davis", "eve.davis@prothink.com", "Sales Executive", "Sales", "inactive", 450},
}

var seedTasks = []seedTask{
	{"Implement user authentication", "Add JWT-based authentication to the API", "done", "high", -10, 1},
	{"Design database schema", "Create ERD for employee and task management system", "done", "high", -20, 0},
	{"Write API documentation", "Document all REST endpoints with examples", "in_progress", "medium", 5, 1},
	{"Conduct user interviews", "Interview 10 potential users about feature requirements", "in_progress", "high", 3, 2},
	{"Setup CI/CD pipeline", "Configure GitHub Actions for automated testing and deployment", "todo", "medium", 15, 1},
	{"Create onboarding documentation", "Prepare comprehensive onboarding guide for new hires", "todo", "low", 30, 3},
	{"Q4 sales report analysis", "Analyze Q4 sales data and prepare presentation", "todo", "high", 7, -1},
	{"Refactor legacy codebase", "Improve code quality and remove technical debt", "todo", "low", 45, -1},
}

// Seed inserts the demo dataset. It only runs when the employees table is
// empty, so restarts never duplicate rows.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM employees`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count employees: %w", err)
	}
	if count > 0 {
		log.Println("database already seeded, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	ids := make([]int64, len(seedEmployees))
	for i, e := range seedEmployees {
		err := tx.QueryRow(ctx, `
			INSERT INTO employees (name, email, role, department, status, date_joined)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, e.name, e.email, e.role, e.department, e.status, now.AddDate(0, 0, -e.joinedDaysAgo)).Scan(&ids[i])
		if err != nil {
			return fmt.Errorf("seed: insert employee %s: %w", e.email, err)
		}
	}

	for _, t := range seedTasks {
		var employeeID *int64
		if t.assignee >= 0 {
			employeeID = &ids[t.assignee]
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO tasks (title, description, status, priority, due_date, employee_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, t.title, t.description, t.status, t.priority, now.AddDate(0, 0, t.dueInDays), employeeID)
		if err != nil {
			return fmt.Errorf("seed: insert task %q: %w", t.title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	log.Printf("seeded %d employees and %d tasks", len(seedEmployees), len(seedTasks))
	return nil
}
