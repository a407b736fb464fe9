package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format of date-valued fields and query params.
const dateLayout = "2006-01-02"

// parseListSize reads the "size" query param, applying def when absent and
// rejecting values outside [1, max].
func parseListSize(c *gin.Context, def int, max int) (int, error) {
	raw := c.Query("size")
	if raw == "" {
		return def, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("size must be an integer, got %q", raw)
	}
	if size < 1 || size > max {
		return 0, fmt.Errorf("size must be between 1 and %d, got %d", max, size)
	}
	return size, nil
}

// parseDateParam reads an optional YYYY-MM-DD query param, nil when absent.
func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be formatted as YYYY-MM-DD, got %q", name, raw)
	}
	return &d, nil
}

// parseIdParam reads a positive integer path param.
func parseIdParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return uint(id), nil
}

// likePattern builds the case-insensitive LIKE pattern for a search keyword.
func likePattern(keyword string) string {
	return "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
}

// mustParseDate converts an already validated YYYY-MM-DD string. Only call on
// fields guarded by a `datetime=2006-01-02` binding rule.
func mustParseDate(raw string) time.Time {
	d, _ := time.Parse(dateLayout, raw)
	return d
}
