package partnersapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/partners"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var partnerRepo = repo.Repository[partners.Partner]{
	DefaultOrder: "id ASC",
	MaxLimit:     1000,
}

var partnerColumns = repo.Columns(
	"title_en", "title_az", "title_ru",
	"button_text_en", "button_text_az", "button_text_ru",
	"title", "button_text",
)

var logoRepo = repo.Repository[partners.PartnerLogo]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"partner_id": "partner_id"},
	MaxLimit:     1000,
}

var logoColumns = repo.Columns("image_url", "order")

func partnerResponse(p *partners.Partner, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(p, lang))
	out["id"] = p.ID
	out["created_at"] = p.CreatedAt
	out["updated_at"] = p.UpdatedAt
	if p.Logos != nil {
		out["logos"] = p.Logos
	}
	return out
}

func withLogos(db *gorm.DB) *gorm.DB {
	return db.Preload("Logos", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC, id ASC`)
	})
}

// GET /partners
func ListPartners(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	var items []partners.Partner
	err := withLogos(database.DB).Order("id ASC").Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partners"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, partnerResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /partners (accepts nested logos)
func CreatePartner(c *gin.Context) {
	var p partners.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = 0
	for i := range p.Logos {
		p.Logos[i].ID = 0
		p.Logos[i].PartnerID = 0
	}

	if err := partnerRepo.Create(database.DB, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		return
	}
	c.JSON(http.StatusCreated, partnerResponse(&p, i18n.Default))
}

// GET /partners/:id
func GetPartner(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var p partners.Partner
	if err := withLogos(database.DB).First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "fields": i18n.AllVersions(&p)})
		return
	}
	c.JSON(http.StatusOK, partnerResponse(&p, params.Language(c)))
}

// PUT /partners/:id
func UpdatePartner(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := partnerRepo.Update(database.DB, id, repo.FilterColumns(body, partnerColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, partnerResponse(p, params.Language(c)))
}

// DELETE /partners/:id
func DeletePartner(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := partnerRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}

// GET /partners/:id/logos
func ListPartnerLogos(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	logos, err := logoRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"partner_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partner logos"})
		return
	}
	c.JSON(http.StatusOK, logos)
}

// POST /partners/:id/logos (multipart form)
func UploadPartnerLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := partnerRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "partners/logos", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store logo"})
		return
	}

	logo := partners.PartnerLogo{PartnerID: id, ImageURL: url, Order: orderForm(c)}
	if err := logoRepo.Create(database.DB, &logo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner logo"})
		return
	}
	c.JSON(http.StatusCreated, logo)
}

// GET /partner-logos/:id
func GetPartnerLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	logo, err := logoRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partner logo"})
		return
	}
	c.JSON(http.StatusOK, logo)
}

// PUT /partner-logos/:id
func UpdatePartnerLogo(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner logo"})
		return
	}
	c.JSON(http.StatusOK, logo)
}

// DELETE /partner-logos/:id
func DeletePartnerLogo(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := logoRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner logo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner logo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner logo deleted successfully"})
}

func orderForm(c *gin.Context) int {
	order, _ := strconv.Atoi(c.DefaultPostForm("order", "0"))
	return order
}
