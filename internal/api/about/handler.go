package aboutapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/about"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var aboutRepo = repo.Repository[about.About]{
	DefaultOrder: "id ASC",
	MaxLimit:     100,
}

var aboutColumns = repo.Columns(
	"experience_en", "experience_az", "experience_ru",
	"project_count_en", "project_count_az", "project_count_ru",
	"members_en", "members_az", "members_ru",
	"experience", "project_count", "members",
)

var logoRepo = repo.Repository[about.AboutLogo]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"about_id": "about_id"},
	MaxLimit:     1000,
}

var logoColumns = repo.Columns("image_url", "order")

func aboutResponse(a *about.About, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(a, lang))
	out["id"] = a.ID
	out["created_at"] = a.CreatedAt
	out["updated_at"] = a.UpdatedAt
	if a.Logos != nil {
		out["logos"] = a.Logos
	}
	return out
}

func withLogos(db *gorm.DB) *gorm.DB {
	return db.Preload("Logos", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC, id ASC`)
	})
}

// GET /about
func ListAbout(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 100)
	lang := params.Language(c)

	var items []about.About
	err := withLogos(database.DB).Order("id ASC").Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about entries"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, aboutResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /about (accepts nested logos)
func CreateAbout(c *gin.Context) {
	var a about.About
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = 0
	for i := range a.Logos {
		a.Logos[i].ID = 0
		a.Logos[i].AboutID = 0
	}

	if err := aboutRepo.Create(database.DB, &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create about entry"})
		return
	}
	c.JSON(http.StatusCreated, aboutResponse(&a, i18n.Default))
}

// GET /about/:id
func GetAbout(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var a about.About
	if err := withLogos(database.DB).First(&a, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "About entry not found"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "fields": i18n.AllVersions(&a)})
		return
	}
	c.JSON(http.StatusOK, aboutResponse(&a, params.Language(c)))
}

// PUT /about/:id
func UpdateAbout(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := aboutRepo.Update(database.DB, id, repo.FilterColumns(body, aboutColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about entry"})
		return
	}
	c.JSON(http.StatusOK, aboutResponse(a, params.Language(c)))
}

// DELETE /about/:id
func DeleteAbout(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := aboutRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete about entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "About entry deleted successfully"})
}

// GET /about/:id/logos
func ListAboutLogos(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	logos, err := logoRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"about_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about logos"})
		return
	}
	c.JSON(http.StatusOK, logos)
}

// POST /about/:id/logos (multipart form)
func UploadAboutLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := aboutRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "About entry not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "about/logos", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store logo"})
		return
	}

	order, _ := strconv.Atoi(c.DefaultPostForm("order", "0"))
	logo := about.AboutLogo{AboutID: id, ImageURL: url, Order: order}
	if err := logoRepo.Create(database.DB, &logo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create about logo"})
		return
	}
	c.JSON(http.StatusCreated, logo)
}

// GET /about-logos/:id
func GetAboutLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	logo, err := logoRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about logo"})
		return
	}
	c.JSON(http.StatusOK, logo)
}

// PUT /about-logos/:id
func UpdateAboutLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logo, err := logoRepo.Update(database.DB, id, repo.FilterColumns(body, logoColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about logo"})
		return
	}
	c.JSON(http.StatusOK, logo)
}

// DELETE /about-logos/:id
func DeleteAboutLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := logoRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete about logo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "About logo deleted successfully"})
}
