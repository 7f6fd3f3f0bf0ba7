package sectorsapi

import (
	"errors"
	"net/http"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/sectors"
	"sda-backend/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var sectorRepo = repo.Repository[sectors.PropertySector]{
	DefaultOrder: `"order" ASC`,
	Orderable: map[string]string{
		"order": `"order"`,
		"title": "title",
	},
	MaxLimit: 1000,
}

var sectorColumns = repo.Columns("title", "description", "order")

var innRepo = repo.Repository[sectors.SectorInn]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"property_sector_id": "property_sector_id"},
	MaxLimit:     1000,
}

var innColumns = repo.Columns("title", "description", "order")

func withInns(db *gorm.DB) *gorm.DB {
	return db.Preload("Inns", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC, id ASC`)
	})
}

// GET /property-sectors
func ListPropertySectors(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)

	var items []sectors.PropertySector
	q := withInns(database.DB)
	q = sectorRepo.ApplyOrder(q, c.Query("order_by"), c.DefaultQuery("direction", "asc"))
	if err := q.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load property sectors"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /property-sectors (accepts nested inns)
func CreatePropertySector(c *gin.Context) {
	var s sectors.PropertySector
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	s.ID = 0
	for i := range s.Inns {
		s.Inns[i].ID = 0
		s.Inns[i].PropertySectorID = 0
	}

	if err := sectorRepo.Create(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property sector"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /property-sectors/:id
func GetPropertySector(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var s sectors.PropertySector
	if err := withInns(database.DB).First(&s, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property sector not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /property-sectors/:id
func UpdatePropertySector(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := sectorRepo.Update(database.DB, id, repo.FilterColumns(body, sectorColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property sector not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property sector"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /property-sectors/:id
func DeletePropertySector(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := sectorRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property sector not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property sector"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property sector deleted successfully"})
}

// GET /property-sectors/:id/inns
func ListSectorInns(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	inns, err := innRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"property_sector_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sector inns"})
		return
	}
	c.JSON(http.StatusOK, inns)
}

// POST /property-sectors/:id/inns
func CreateSectorInn(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := sectorRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property sector not found"})
		return
	}

	var inn sectors.SectorInn
	if err := c.ShouldBindJSON(&inn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if inn.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	inn.ID = 0
	inn.PropertySectorID = id

	if err := innRepo.Create(database.DB, &inn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sector inn"})
		return
	}
	c.JSON(http.StatusCreated, inn)
}

// GET /sector-inns/:id
func GetSectorInn(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	inn, err := innRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sector inn not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sector inn"})
		return
	}
	c.JSON(http.StatusOK, inn)
}

// PUT /sector-inns/:id
func UpdateSectorInn(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inn, err := innRepo.Update(database.DB, id, repo.FilterColumns(body, innColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sector inn not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sector inn"})
		return
	}
	c.JSON(http.StatusOK, inn)
}

// DELETE /sector-inns/:id
func DeleteSectorInn(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := innRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sector inn not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sector inn"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sector inn deleted successfully"})
}
