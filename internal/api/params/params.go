// Package params parses the query arguments shared by every listing
// endpoint.
package params

import (
	"strconv"

	"sda-backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Pagination reads skip/limit, clamping skip to ≥ 0 and limit into
// [1, maxLimit].
func Pagination(c *gin.Context, defaultLimit, maxLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// Language normalizes the requested content language.
func Language(c *gin.Context) string {
	return i18n.Normalize(c.Query("language"))
}

// ID parses the numeric path id. On failure it writes a 400 response and
// returns false; the handler must return immediately.
func ID(c *gin.Context) (uint, bool) {
	return namedID(c, "id")
}

func namedID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
