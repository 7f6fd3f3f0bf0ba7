package servicesapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/services"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
)

var serviceRepo = repo.Repository[services.Service]{
	DefaultOrder: `"order" ASC`,
	Orderable: map[string]string{
		"order":      `"order"`,
		"slug":       "slug",
		"created_at": "created_at",
	},
	MaxLimit: 100,
}

var serviceColumns = repo.Columns(
	"name_en", "name_az", "name_ru",
	"description_en", "description_az", "description_ru",
	"hero_text_en", "hero_text_az", "hero_text_ru",
	"meta_title_en", "meta_title_az", "meta_title_ru",
	"meta_description_en", "meta_description_az", "meta_description_ru",
	"name", "description", "hero_text", "meta_title", "meta_description",
	"slug", "image_url", "icon_url", "order",
)

var benefitRepo = repo.Repository[services.ServiceBenefit]{
	DefaultOrder: `"order" ASC`,
	MaxLimit:     100,
}

var benefitColumns = repo.Columns("title", "description", "order")

func serviceResponse(s *services.Service, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(s, lang))
	out["id"] = s.ID
	out["slug"] = s.Slug
	out["image_url"] = s.ImageURL
	out["icon_url"] = s.IconURL
	out["order"] = s.Order
	out["created_at"] = s.CreatedAt
	out["updated_at"] = s.UpdatedAt
	return out
}

// GET /services
func ListServices(c *gin.Context) {
	skip, limit := params.Pagination(c, 20, 100)
	lang := params.Language(c)

	items, err := serviceRepo.List(database.DB, repo.ListParams{
		Skip:      skip,
		Limit:     limit,
		OrderBy:   c.Query("order_by"),
		Direction: c.DefaultQuery("direction", "asc"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, serviceResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /services (multipart form with optional icon)
func CreateService(c *gin.Context) {
	name := c.PostForm("name")
	slug := c.PostForm("slug")
	if name == "" || slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
		return
	}
	description := c.PostForm("description")
	order, _ := strconv.Atoi(c.DefaultPostForm("order", "0"))

	var iconURL *string
	if fh, err := c.FormFile("icon"); err == nil {
		url, err := uploads.Save(fh, "services/icons", "image")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store icon"})
			return
		}
		iconURL = &url
	}

	s := services.Service{
		NameEn:        &name,
		DescriptionEn: &description,
		Slug:          slug,
		Order:         order,
		IconURL:       iconURL,
	}
	if err := serviceRepo.Create(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, serviceResponse(&s, i18n.Default))
}

// POST /services/json
func CreateServiceJSON(c *gin.Context) {
	var s services.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}
	s.ID = 0

	if err := serviceRepo.Create(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, serviceResponse(&s, i18n.Default))
}

// POST /services/:id/icon
func UploadServiceIcon(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := serviceRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "services/icons", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store icon"})
		return
	}

	if _, err := serviceRepo.Update(database.DB, id, map[string]any{"icon_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Icon uploaded successfully", "url": url})
}

// GET /services/:id
func GetService(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	s, err := serviceRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": s.ID, "slug": s.Slug, "fields": i18n.AllVersions(s)})
		return
	}
	c.JSON(http.StatusOK, serviceResponse(s, params.Language(c)))
}

// GET /services/slug/:slug
func GetServiceBySlug(c *gin.Context) {
	var s services.Service
	err := database.DB.First(&s, "slug = ?", c.Param("slug")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, serviceResponse(&s, params.Language(c)))
}

// PATCH /services/:id
func UpdateService(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := serviceRepo.Update(database.DB, id, repo.FilterColumns(body, serviceColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, serviceResponse(s, params.Language(c)))
}

// DELETE /services/:id
func DeleteService(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := serviceRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GET /service-benefits
func ListServiceBenefits(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 100)
	items, err := benefitRepo.List(database.DB, repo.ListParams{Skip: skip, Limit: limit})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service benefits"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /service-benefits
func CreateServiceBenefit(c *gin.Context) {
	var b services.ServiceBenefit
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if b.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	b.ID = 0
	if err := benefitRepo.Create(database.DB, &b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service benefit"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /service-benefits/:id
func GetServiceBenefit(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	b, err := benefitRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service benefit not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service benefit"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /service-benefits/:id
func UpdateServiceBenefit(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := benefitRepo.Update(database.DB, id, repo.FilterColumns(body, benefitColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service benefit not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service benefit"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /service-benefits/:id
func DeleteServiceBenefit(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := benefitRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service benefit not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service benefit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service benefit deleted successfully"})
}
