package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prothink-api/internal/models"
	"prothink-api/internal/store"
)

type TaskHandler struct {
	store store.TaskStore
}

func NewTaskHandler(s store.TaskStore) *TaskHandler {
	return &TaskHandler{store: s}
}

// GET /api/tasks
// Filters: status, priority, employee_id, due_before, due_after, plus
// page/page_size.
func (h *TaskHandler) List(c *gin.Context) {
	var verrs models.ValidationErrors
	page, pageSize := pagination(c, &verrs)

	f := store.TaskFilter{Page: page, PageSize: pageSize}
	if raw := c.Query("status"); raw != "" {
		s := models.TaskStatus(raw)
		if !s.Valid() {
			verrs = append(verrs, models.FieldError{Field: "status", Message: "must be one of: todo, in_progress, done"})
		} else {
			f.Status = &s
		}
	}
	if raw := c.Query("priority"); raw != "" {
		p := models.TaskPriority(raw)
		if !p.Valid() {
			verrs = append(verrs, models.FieldError{Field: "priority", Message: "must be one of: low, medium, high"})
		} else {
			f.Priority = &p
		}
	}
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verrs = append(verrs, models.FieldError{Field: "employee_id", Message: "must be an integer"})
		} else {
			f.EmployeeID = &id
		}
	}
	if raw := c.Query("due_before"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			verrs = append(verrs, models.FieldError{Field: "due_before", Message: "must be YYYY-MM-DD"})
		} else {
			f.DueBefore = &d
		}
	}
	if raw := c.Query("due_after"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			verrs = append(verrs, models.FieldError{Field: "due_after", Message: "must be YYYY-MM-DD"})
		} else {
			f.DueAfter = &d
		}
	}
	if len(verrs) > 0 {
		respondError(c, verrs)
		return
	}

	list, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var in models.TaskCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := in.Validate()
	if err != nil {
		respondError(c, err)
		return
	}
	task, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// PUT /api/tasks/:id and PATCH /api/tasks/:id
// Only supplied fields change; explicit nulls clear the nullable ones.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.TaskUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	changes, err := in.Validate()
	if err != nil {
		respondError(c, err)
		return
	}
	task, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignInput struct {
	EmployeeID *int64 `json:"employee_id"`
}

// POST /api/tasks/:id/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in assignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if in.EmployeeID == nil {
		respondError(c, models.ValidationErrors{{Field: "employee_id", Message: "is required"}})
		return
	}
	task, err := h.store.Assign(c.Request.Context(), id, *in.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /api/tasks/:id/unassign
func (h *TaskHandler) Unassign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.store.Unassign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
