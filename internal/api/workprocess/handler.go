package workprocessapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/workprocess"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
)

var processRepo = repo.Repository[workprocess.WorkProcess]{
	DefaultOrder: `"order" ASC`,
	Orderable: map[string]string{
		"order":      `"order"`,
		"created_at": "created_at",
	},
	MaxLimit: 1000,
}

var processColumns = repo.Columns(
	"title_en", "title_az", "title_ru",
	"description_en", "description_az", "description_ru",
	"title", "description", "order", "image_url",
)

func processResponse(w *workprocess.WorkProcess, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(w, lang))
	out["id"] = w.ID
	out["order"] = w.Order
	out["image_url"] = w.ImageURL
	out["created_at"] = w.CreatedAt
	out["updated_at"] = w.UpdatedAt
	return out
}

// GET /work-processes
func ListWorkProcesses(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	items, err := processRepo.List(database.DB, repo.ListParams{
		Skip:      skip,
		Limit:     limit,
		OrderBy:   c.Query("order_by"),
		Direction: c.DefaultQuery("direction", "asc"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work processes"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, processResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /work-processes (multipart form with optional image)
func CreateWorkProcess(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	order, _ := strconv.Atoi(c.DefaultPostForm("order", "0"))

	w := workprocess.WorkProcess{TitleEn: &title, Order: order}
	if description := c.PostForm("description"); description != "" {
		w.DescriptionEn = &description
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := uploads.Save(fh, "work-processes", "image")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store image"})
			return
		}
		w.ImageURL = &url
	}

	if err := processRepo.Create(database.DB, &w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work process"})
		return
	}
	c.JSON(http.StatusCreated, processResponse(&w, i18n.Default))
}

// POST /work-processes/json
func CreateWorkProcessJSON(c *gin.Context) {
	var w workprocess.WorkProcess
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.ID = 0

	if err := processRepo.Create(database.DB, &w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work process"})
		return
	}
	c.JSON(http.StatusCreated, processResponse(&w, i18n.Default))
}

// GET /work-processes/:id
func GetWorkProcess(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	w, err := processRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work process not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work process"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": w.ID, "fields": i18n.AllVersions(w)})
		return
	}
	c.JSON(http.StatusOK, processResponse(w, params.Language(c)))
}

// PUT /work-processes/:id
func UpdateWorkProcess(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := processRepo.Update(database.DB, id, repo.FilterColumns(body, processColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work process not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work process"})
		return
	}
	c.JSON(http.StatusOK, processResponse(w, params.Language(c)))
}

// DELETE /work-processes/:id
func DeleteWorkProcess(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := processRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work process not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work process"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work process deleted successfully"})
}
