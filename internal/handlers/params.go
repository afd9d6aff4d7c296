package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"prothink-api/internal/models"
	"prothink-api/internal/store"
)

// pathID parses the :id path parameter. A non-integer id is a validation
// failure, already responded to when ok is false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, models.ValidationErrors{{Field: "id", Message: "must be an integer"}})
		return 0, false
	}
	return id, true
}

// pagination parses page/page_size with their defaults and bounds
// (page >= 1, page_size in [1,100]), collecting field errors.
func pagination(c *gin.Context, verrs *models.ValidationErrors) (page, pageSize int) {
	page, pageSize = 1, store.DefaultPageSize

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			*verrs = append(*verrs, models.FieldError{Field: "page", Message: "must be an integer >= 1"})
		} else {
			page = n
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > store.MaxPageSize {
			*verrs = append(*verrs, models.FieldError{Field: "page_size", Message: "must be an integer between 1 and 100"})
		} else {
			pageSize = n
		}
	}
	return page, pageSize
}
