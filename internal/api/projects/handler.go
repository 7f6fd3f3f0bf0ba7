package projectsapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/projects"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var projectRepo = repo.Repository[projects.Project]{
	DefaultOrder: "year DESC",
	Filterable: map[string]string{
		"property_sector_id": "property_sector_id",
		"year":               "year",
	},
	Orderable: map[string]string{
		"year":       "year",
		"created_at": "created_at",
		"slug":       "slug",
	},
	MaxLimit: 1000,
}

var projectColumns = repo.Columns(
	"title_en", "title_az", "title_ru",
	"description_en", "description_az", "description_ru",
	"title", "description",
	"slug", "tag", "client", "year", "property_sector_id", "cover_photo_url",
)

var photoRepo = repo.Repository[projects.ProjectPhoto]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"project_id": "project_id"},
	MaxLimit:     1000,
}

var photoColumns = repo.Columns("image_url", "order")

func projectResponse(p *projects.Project, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(p, lang))
	out["id"] = p.ID
	out["slug"] = p.Slug
	out["tag"] = p.Tag
	out["client"] = p.Client
	out["year"] = p.Year
	out["property_sector_id"] = p.PropertySectorID
	out["cover_photo_url"] = p.CoverPhotoURL
	out["created_at"] = p.CreatedAt
	out["updated_at"] = p.UpdatedAt
	if p.Photos != nil {
		out["photos"] = p.Photos
	}
	return out
}

func withOrderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC, id ASC`)
	})
}

// GET /projects
func ListProjects(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	filters := map[string]any{}
	if v := c.Query("property_sector_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			filters["property_sector_id"] = id
		}
	}
	if v := c.Query("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filters["year"] = year
		}
	}

	q := database.DB.Model(&projects.Project{})
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("LOWER(tag) LIKE LOWER(?)", "%"+tag+"%")
	}
	for key, val := range filters {
		q = q.Where(projectRepo.Filterable[key]+" = ?", val)
	}
	q = projectRepo.ApplyOrder(q, c.Query("order_by"), c.DefaultQuery("direction", "asc"))

	var items []projects.Project
	if err := q.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, projectResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /projects (multipart form with optional cover photo)
func CreateProject(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	p := projects.Project{TitleEn: &title}
	if tag := c.PostForm("tag"); tag != "" {
		p.Tag = &tag
	}
	if client := c.PostForm("client"); client != "" {
		p.Client = &client
	}
	if slug := c.PostForm("slug"); slug != "" {
		p.Slug = &slug
	}
	if v := c.PostForm("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			p.Year = &year
		}
	}
	if v := c.PostForm("property_sector_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			sectorID := uint(id)
			p.PropertySectorID = &sectorID
		}
	}

	if fh, err := c.FormFile("cover_photo"); err == nil {
		url, err := uploads.Save(fh, "projects/covers", "image")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store cover photo"})
			return
		}
		p.CoverPhotoURL = &url
	}

	if err := projectRepo.Create(database.DB, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, projectResponse(&p, i18n.Default))
}

// POST /projects/json (accepts nested photos; parent and children are
// persisted in one transaction)
func CreateProjectJSON(c *gin.Context) {
	var p projects.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = 0
	for i := range p.Photos {
		p.Photos[i].ID = 0
		p.Photos[i].ProjectID = 0
	}

	if err := projectRepo.Create(database.DB, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, projectResponse(&p, i18n.Default))
}

// POST /projects/:id/cover
func UploadProjectCover(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := projectRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "projects/covers", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store cover photo"})
		return
	}

	if _, err := projectRepo.Update(database.DB, id, map[string]any{"cover_photo_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cover photo uploaded successfully", "url": url})
}

// GET /projects/:id
func GetProject(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := withOrderedPhotos(database.DB).First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "slug": p.Slug, "fields": i18n.AllVersions(&p)})
		return
	}
	c.JSON(http.StatusOK, projectResponse(&p, params.Language(c)))
}

// GET /projects/slug/:slug
func GetProjectBySlug(c *gin.Context) {
	var p projects.Project
	if err := withOrderedPhotos(database.DB).First(&p, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, projectResponse(&p, params.Language(c)))
}

// PUT /projects/:id
func UpdateProject(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := projectRepo.Update(database.DB, id, repo.FilterColumns(body, projectColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, projectResponse(p, params.Language(c)))
}

// DELETE /projects/:id
func DeleteProject(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := projectRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GET /projects/:id/photos
func ListProjectPhotos(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	photos, err := photoRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"project_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// POST /projects/:id/photos (multipart upload)
func UploadProjectPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := projectRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "projects/photos", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store photo"})
		return
	}

	order, _ := strconv.Atoi(c.DefaultQuery("order", "0"))
	photo := projects.ProjectPhoto{ProjectID: id, ImageURL: url, Order: order}
	if err := photoRepo.Create(database.DB, &photo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project photo"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Photo uploaded successfully", "url": url, "id": photo.ID})
}

// GET /project-photos/:id
func GetProjectPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	photo, err := photoRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project photo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project photo"})
		return
	}
	c.JSON(http.StatusOK, photo)
}

// PUT /project-photos/:id
func UpdateProjectPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	photo, err := photoRepo.Update(database.DB, id, repo.FilterColumns(body, photoColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project photo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project photo"})
		return
	}
	c.JSON(http.StatusOK, photo)
}

// DELETE /project-photos/:id
func DeleteProjectPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := photoRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project photo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project photo deleted successfully"})
}
