package teamapi

import (
	"errors"
	"net/http"
	"strconv"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/team"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var memberRepo = repo.Repository[team.TeamMember]{
	DefaultOrder: `"order" ASC`,
	Orderable: map[string]string{
		"order":      `"order"`,
		"created_at": "created_at",
	},
	MaxLimit: 1000,
}

var memberColumns = repo.Columns(
	"full_name_en", "full_name_az", "full_name_ru",
	"role_en", "role_az", "role_ru",
	"full_name", "role", "photo_url", "order",
)

var sectionRepo = repo.Repository[team.TeamSection]{
	DefaultOrder: "id ASC",
	MaxLimit:     1000,
}

var sectionColumns = repo.Columns("title", "button_text")

var itemRepo = repo.Repository[team.TeamSectionItem]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"team_section_id": "team_section_id"},
	MaxLimit:     1000,
}

var itemColumns = repo.Columns("name", "description", "photo_url", "button_text", "order")

func memberResponse(m *team.TeamMember, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(m, lang))
	out["id"] = m.ID
	out["photo_url"] = m.PhotoURL
	out["order"] = m.Order
	out["created_at"] = m.CreatedAt
	out["updated_at"] = m.UpdatedAt
	return out
}

// GET /team-members
func ListTeamMembers(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	items, err := memberRepo.List(database.DB, repo.ListParams{
		Skip:      skip,
		Limit:     limit,
		OrderBy:   c.Query("order_by"),
		Direction: c.DefaultQuery("direction", "asc"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team members"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, memberResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /team-members (multipart form with optional photo)
func CreateTeamMember(c *gin.Context) {
	fullName := c.PostForm("full_name")
	if fullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name is required"})
		return
	}
	order, _ := strconv.Atoi(c.DefaultPostForm("order", "0"))

	m := team.TeamMember{FullNameEn: &fullName, Order: order}
	if role := c.PostForm("role"); role != "" {
		m.RoleEn = &role
	}

	if fh, err := c.FormFile("photo"); err == nil {
		url, err := uploads.Save(fh, "team/members", "image")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store photo"})
			return
		}
		m.PhotoURL = &url
	}

	if err := memberRepo.Create(database.DB, &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, memberResponse(&m, i18n.Default))
}

// POST /team-members/json
func CreateTeamMemberJSON(c *gin.Context) {
	var m team.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = 0

	if err := memberRepo.Create(database.DB, &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, memberResponse(&m, i18n.Default))
}

// POST /team-members/:id/photo
func UploadTeamMemberPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := memberRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "team/members", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store photo"})
		return
	}

	if _, err := memberRepo.Update(database.DB, id, map[string]any{"photo_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded successfully", "url": url})
}

// GET /team-members/:id
func GetTeamMember(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	m, err := memberRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team member"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": m.ID, "fields": i18n.AllVersions(m)})
		return
	}
	c.JSON(http.StatusOK, memberResponse(m, params.Language(c)))
}

// PUT /team-members/:id
func UpdateTeamMember(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := memberRepo.Update(database.DB, id, repo.FilterColumns(body, memberColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, memberResponse(m, params.Language(c)))
}

// DELETE /team-members/:id
func DeleteTeamMember(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := memberRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// GET /team-sections
func ListTeamSections(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)

	var sections []team.TeamSection
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, id ASC`)
		}).
		Order("id ASC").
		Offset(skip).Limit(limit).
		Find(&sections).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team sections"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// POST /team-sections
func CreateTeamSection(c *gin.Context) {
	var s team.TeamSection
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	s.ID = 0
	for i := range s.Items {
		s.Items[i].ID = 0
		s.Items[i].TeamSectionID = 0
	}

	if err := sectionRepo.Create(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team section"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /team-sections/:id
func GetTeamSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var s team.TeamSection
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, id ASC`)
		}).
		First(&s, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /team-sections/:id
func UpdateTeamSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := sectionRepo.Update(database.DB, id, repo.FilterColumns(body, sectionColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team section"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /team-sections/:id
func DeleteTeamSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := sectionRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team section deleted successfully"})
}

// GET /team-sections/:id/items
func ListTeamSectionItems(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	items, err := itemRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"team_section_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team section items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /team-sections/:id/items
func CreateTeamSectionItem(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := sectionRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section not found"})
		return
	}

	var item team.TeamSectionItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	item.ID = 0
	item.TeamSectionID = id

	if err := itemRepo.Create(database.DB, &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team section item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /team-section-items/:id
func GetTeamSectionItem(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	item, err := itemRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team section item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /team-section-items/:id
func UpdateTeamSectionItem(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := itemRepo.Update(database.DB, id, repo.FilterColumns(body, itemColumns))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team section item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /team-section-items/:id
func DeleteTeamSectionItem(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := itemRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team section item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team section item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team section item deleted successfully"})
}
