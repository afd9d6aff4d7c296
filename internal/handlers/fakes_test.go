package handlers

import (
	"context"

	"prothink-api/internal/models"
	"prothink-api/internal/store"
)

// Function-field fakes so each test supplies only the calls it expects.

type fakeEmployees struct {
	list   func(ctx context.Context, f store.EmployeeFilter) ([]models.Employee, error)
	get    func(ctx context.Context, id int64) (*models.EmployeeWithTasks, error)
	create func(ctx context.Context, in models.NewEmployee) (*models.Employee, error)
	update func(ctx context.Context, id int64, ch models.EmployeeChanges) (*models.Employee, error)
	delete func(ctx context.Context, id int64) error
}

func (f *fakeEmployees) List(ctx context.Context, filter store.EmployeeFilter) ([]models.Employee, error) {
	return f.list(ctx, filter)
}

func (f *fakeEmployees) Get(ctx context.Context, id int64) (*models.EmployeeWithTasks, error) {
	return f.get(ctx, id)
}

func (f *fakeEmployees) Create(ctx context.Context, in models.NewEmployee) (*models.Employee, error) {
	return f.create(ctx, in)
}

func (f *fakeEmployees) Update(ctx context.Context, id int64, ch models.EmployeeChanges) (*models.Employee, error) {
	return f.update(ctx, id, ch)
}

func (f *fakeEmployees) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

type fakeTasks struct {
	list     func(ctx context.Context, f store.TaskFilter) ([]models.TaskWithEmployee, error)
	get      func(ctx context.Context, id int64) (*models.TaskWithEmployee, error)
	create   func(ctx context.Context, in models.NewTask) (*models.Task, error)
	update   func(ctx context.Context, id int64, ch models.TaskChanges) (*models.Task, error)
	delete   func(ctx context.Context, id int64) error
	assign   func(ctx context.Context, id, employeeID int64) (*models.Task, error)
	unassign func(ctx context.Context, id int64) (*models.Task, error)
}

func (f *fakeTasks) List(ctx context.Context, filter store.TaskFilter) ([]models.TaskWithEmployee, error) {
	return f.list(ctx, filter)
}

func (f *fakeTasks) Get(ctx context.Context, id int64) (*models.TaskWithEmployee, error) {
	return f.get(ctx, id)
}

func (f *fakeTasks) Create(ctx context.Context, in models.NewTask) (*models.Task, error) {
	return f.create(ctx, in)
}

func (f *fakeTasks) Update(ctx context.Context, id int64, ch models.TaskChanges) (*models.Task, error) {
	return f.update(ctx, id, ch)
}

func (f *fakeTasks) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakeTasks) Assign(ctx context.Context, id, employeeID int64) (*models.Task, error) {
	return f.assign(ctx, id, employeeID)
}

func (f *fakeTasks) Unassign(ctx context.Context, id int64) (*models.Task, error) {
	return f.unassign(ctx, id)
}
