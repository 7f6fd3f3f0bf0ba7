package approachesapi

import (
	"errors"
	"net/http"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/approaches"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"

	"github.com/gin-gonic/gin"
)

var approachRepo = repo.Repository[approaches.Approach]{
	DefaultOrder: `"order" ASC`,
	Orderable: map[string]string{
		"order":      `"order"`,
		"created_at": "created_at",
	},
	MaxLimit: 1000,
}

var approachColumns = repo.Columns(
	"title_en", "title_az", "title_ru",
	"description_en", "description_az", "description_ru",
	"title", "description", "order",
)

func approachResponse(a *approaches.Approach, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(a, lang))
	out["id"] = a.ID
	out["order"] = a.Order
	out["created_at"] = a.CreatedAt
	out["updated_at"] = a.UpdatedAt
	return out
}

// GET /approaches
func ListApproaches(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	items, err := approachRepo.List(database.DB, repo.ListParams{
		Skip:      skip,
		Limit:     limit,
		OrderBy:   c.Query("order_by"),
		Direction: c.DefaultQuery("direction", "asc"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load approaches"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, approachResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /approaches
func CreateApproach(c *gin.Context) {
	var a approaches.Approach
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = 0

	if err := approachRepo.Create(database.DB, &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create approach"})
		return
	}
	c.JSON(http.StatusCreated, approachResponse(&a, i18n.Default))
}

// GET /approaches/:id
func GetApproach(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	a, err := approachRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approach not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load approach"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "fields": i18n.AllVersions(a)})
		return
	}
	c.JSON(http.StatusOK, approachResponse(a, params.Language(c)))
}

// PUT /approaches/:id
func UpdateApproach(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := approachRepo.Update(database.DB, id, repo.FilterColumns(body, approachColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approach not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update approach"})
		return
	}
	c.JSON(http.StatusOK, approachResponse(a, params.Language(c)))
}

// DELETE /approaches/:id
func DeleteApproach(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := approachRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approach not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete approach"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approach deleted successfully"})
}
