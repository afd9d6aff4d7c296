package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prothink-api/internal/models"
	"prothink-api/internal/store"
)

func newTaskRouter(s store.TaskStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTaskHandler(s)
	r.GET("/api/tasks", h.List)
	r.POST("/api/tasks", h.Create)
	r.GET("/api/tasks/:id", h.Get)
	r.PUT("/api/tasks/:id", h.Update)
	r.PATCH("/api/tasks/:id", h.Update)
	r.DELETE("/api/tasks/:id", h.Delete)
	r.POST("/api/tasks/:id/assign", h.Assign)
	r.POST("/api/tasks/:id/unassign", h.Unassign)
	return r
}

func TestCreateTaskDefaults(t *testing.T) {
	var captured models.NewTask
	fake := &fakeTasks{
		create: func(_ context.Context, in models.NewTask) (*models.Task, error) {
			captured = in
			now := time.Now()
			return &models.Task{
				ID: 1, Title: in.Title, Description: in.Description,
				Status: in.Status, Priority: in.Priority,
				DueDate: in.DueDate, EmployeeID: in.EmployeeID,
				CreatedAt: now, UpdatedAt: now,
			}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPost, "/api/tasks", `{"title":"Fix bug","employee_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, models.TaskTodo, captured.Status)
	assert.Equal(t, models.PriorityMedium, captured.Priority)
	require.NotNil(t, captured.EmployeeID)
	assert.Equal(t, int64(1), *captured.EmployeeID)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "todo", resp["status"])
	assert.Equal(t, "medium", resp["priority"])
}

func TestCreateTaskValidation(t *testing.T) {
	r := newTaskRouter(&fakeTasks{})

	w := doJSON(t, r, http.MethodPost, "/api/tasks",
		`{"title":"","status":"blocked","priority":"urgent","due_date":"next tuesday"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields []models.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	got := make(map[string]bool)
	for _, fe := range resp.Fields {
		got[fe.Field] = true
	}
	assert.True(t, got["title"])
	assert.True(t, got["status"])
	assert.True(t, got["priority"])
	assert.True(t, got["due_date"])
}

func TestCreateTaskBadEmployee(t *testing.T) {
	fake := &fakeTasks{
		create: func(_ context.Context, in models.NewTask) (*models.Task, error) {
			return nil, &store.ConflictError{Message: "employee with ID 99 not found"}
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPost, "/api/tasks", `{"title":"Fix bug","employee_id":99}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "employee with ID 99 not found")
}

func TestGetTaskWithEmployee(t *testing.T) {
	fake := &fakeTasks{
		get: func(_ context.Context, id int64) (*models.TaskWithEmployee, error) {
			return &models.TaskWithEmployee{
				Task: models.Task{ID: id, Title: "Fix bug", Status: models.TaskTodo, Priority: models.PriorityMedium},
				Employee: &models.EmployeeSummary{
					ID: 1, Name: "Jane Doe", Email: "jane@x.com", Department: "Eng",
				},
			}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodGet, "/api/tasks/7", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Employee *models.EmployeeSummary `json:"employee"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Employee)
	assert.Equal(t, "Jane Doe", resp.Employee.Name)
	assert.Equal(t, "Eng", resp.Employee.Department)
}

func TestListTasksFilters(t *testing.T) {
	var captured store.TaskFilter
	fake := &fakeTasks{
		list: func(_ context.Context, f store.TaskFilter) ([]models.TaskWithEmployee, error) {
			captured = f
			return []models.TaskWithEmployee{}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodGet,
		"/api/tasks?status=in_progress&priority=high&employee_id=3&due_before=2026-12-31&due_after=2026-01-01", "")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, captured.Status)
	assert.Equal(t, models.TaskInProgress, *captured.Status)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, models.PriorityHigh, *captured.Priority)
	require.NotNil(t, captured.EmployeeID)
	assert.Equal(t, int64(3), *captured.EmployeeID)
	require.NotNil(t, captured.DueBefore)
	assert.Equal(t, "2026-12-31", captured.DueBefore.String())
	require.NotNil(t, captured.DueAfter)
	assert.Equal(t, "2026-01-01", captured.DueAfter.String())
}

func TestListTasksBadParams(t *testing.T) {
	r := newTaskRouter(&fakeTasks{})

	for _, query := range []string{
		"status=blocked",
		"priority=urgent",
		"employee_id=abc",
		"due_before=tomorrow",
		"due_after=2026-13-40",
	} {
		w := doJSON(t, r, http.MethodGet, "/api/tasks?"+query, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "query %q", query)
	}
}

func TestUpdateTaskExplicitNull(t *testing.T) {
	var captured models.TaskChanges
	fake := &fakeTasks{
		update: func(_ context.Context, id int64, ch models.TaskChanges) (*models.Task, error) {
			captured = ch
			return &models.Task{ID: id, Title: "Fix bug", Status: models.TaskTodo, Priority: models.PriorityMedium}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPatch, "/api/tasks/1",
		`{"due_date":null,"description":null,"employee_id":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	// explicit nulls are part of the merge set, untouched fields are not
	assert.True(t, captured.DueDate.Present)
	assert.False(t, captured.DueDate.Valid)
	assert.True(t, captured.Description.Present)
	assert.False(t, captured.Description.Valid)
	assert.True(t, captured.EmployeeID.Present)
	assert.False(t, captured.EmployeeID.Valid)
	assert.Nil(t, captured.Title)
	assert.Nil(t, captured.Status)
	assert.Nil(t, captured.Priority)
}

func TestUpdateTaskAbsentFields(t *testing.T) {
	var captured models.TaskChanges
	fake := &fakeTasks{
		update: func(_ context.Context, id int64, ch models.TaskChanges) (*models.Task, error) {
			captured = ch
			return &models.Task{ID: id, Title: "Fix bug", Status: models.TaskDone, Priority: models.PriorityMedium}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/1", `{"status":"done"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, captured.Status)
	assert.Equal(t, models.TaskDone, *captured.Status)
	assert.False(t, captured.DueDate.Present)
	assert.False(t, captured.Description.Present)
	assert.False(t, captured.EmployeeID.Present)
}

func TestAssignTask(t *testing.T) {
	fake := &fakeTasks{
		assign: func(_ context.Context, id, employeeID int64) (*models.Task, error) {
			if employeeID == 99 {
				return nil, &store.ConflictError{Message: "employee with ID 99 not found"}
			}
			return &models.Task{ID: id, Title: "Fix bug", Status: models.TaskTodo,
				Priority: models.PriorityMedium, EmployeeID: &employeeID}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPost, "/api/tasks/1/assign", `{"employee_id":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["employee_id"])

	// nonexistent employee must not modify the task
	w = doJSON(t, r, http.MethodPost, "/api/tasks/1/assign", `{"employee_id":99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// employee_id is required
	w = doJSON(t, r, http.MethodPost, "/api/tasks/1/assign", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUnassignTask(t *testing.T) {
	fake := &fakeTasks{
		unassign: func(_ context.Context, id int64) (*models.Task, error) {
			return &models.Task{ID: id, Title: "Fix bug", Status: models.TaskTodo, Priority: models.PriorityMedium}, nil
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodPost, "/api/tasks/1/unassign", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	val, present := resp["employee_id"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestDeleteTaskNotFound(t *testing.T) {
	fake := &fakeTasks{
		delete: func(_ context.Context, id int64) error {
			return &store.NotFoundError{Kind: "task", ID: id}
		},
	}
	r := newTaskRouter(fake)

	w := doJSON(t, r, http.MethodDelete, "/api/tasks/42", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "task not found")
}
