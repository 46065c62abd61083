package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// Fail aborts the request with a JSON error body.
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

// Paging reads limit/offset query params, clamping limit to [1,max].
func Paging(c *gin.Context, def, max int) (limit, offset int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	offset, err = strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
