package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prothink-api/internal/models"
	"prothink-api/internal/store"
)

type EmployeeHandler struct {
	store store.EmployeeStore
}

func NewEmployeeHandler(s store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{store: s}
}

// GET /api/employees
// Filters: status, department, role, search (name/email substring), plus
// page/page_size.
func (h *EmployeeHandler) List(c *gin.Context) {
	var verrs models.ValidationErrors
	page, pageSize := pagination(c, &verrs)

	f := store.EmployeeFilter{
		Department: c.Query("department"),
		Role:       c.Query("role"),
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   pageSize,
	}
	if raw := c.Query("status"); raw != "" {
		s := models.EmployeeStatus(raw)
		if !s.Valid() {
			verrs = append(verrs, models.FieldError{Field: "status", Message: "must be one of: active, inactive"})
		} else {
			f.Status = &s
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

// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emp, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in models.EmployeeCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := in.Validate(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	emp, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// PUT /api/employees/:id and PATCH /api/employees/:id
// Both apply only the supplied fields.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.EmployeeUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	changes, err := in.Validate()
	if err != nil {
		respondError(c, err)
		return
	}
	emp, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DELETE /api/employees/:id — cascades to the employee's tasks.
func (h *EmployeeHandler) Delete(c *gin.Context) {
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
