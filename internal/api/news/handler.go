package newsapi

import (
	"errors"
	"net/http"
	"strings"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/news"
	"sda-backend/internal/i18n"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var newsRepo = repo.Repository[news.News]{
	DefaultOrder: "created_at DESC",
	Orderable: map[string]string{
		"created_at": "created_at",
		"title":      "title",
	},
	MaxLimit: 1000,
}

var newsColumns = repo.Columns(
	"title_en", "title_az", "title_ru",
	"summary_en", "summary_az", "summary_ru",
	"title", "summary", "photo_url", "tags",
)

var sectionRepo = repo.Repository[news.NewsSection]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"news_id": "news_id"},
	MaxLimit:     1000,
}

var sectionColumns = repo.Columns("order", "heading", "content", "image_url")

func newsResponse(n *news.News, lang string) gin.H {
	out := gin.H(i18n.ResolveAll(n, lang))
	out["id"] = n.ID
	out["photo_url"] = n.PhotoURL
	out["tags"] = n.Tags
	out["created_at"] = n.CreatedAt
	out["updated_at"] = n.UpdatedAt
	if n.Sections != nil {
		out["sections"] = n.Sections
	}
	return out
}

// withAnyTag narrows the listing to articles sharing at least one requested
// tag. Tags are stored JSON-encoded, so each tag matches as a quoted
// substring.
func withAnyTag(q *gorm.DB, tags []string) *gorm.DB {
	if len(tags) == 0 {
		return q
	}
	conds := make([]string, 0, len(tags))
	args := make([]any, 0, len(tags))
	for _, tag := range tags {
		conds = append(conds, "tags LIKE ?")
		args = append(args, `%"`+tag+`"%`)
	}
	return q.Where(strings.Join(conds, " OR "), args...)
}

// GET /news
func ListNews(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)
	lang := params.Language(c)

	q := withAnyTag(database.DB.Model(&news.News{}), c.QueryArray("tags"))
	q = newsRepo.ApplyOrder(q, c.Query("order_by"), c.DefaultQuery("direction", "desc"))

	var items []news.News
	if err := q.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, newsResponse(&items[i], lang))
	}
	c.JSON(http.StatusOK, out)
}

// POST /news (multipart form with optional photo; tags comma-separated)
func CreateNews(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	n := news.News{Title: title, Tags: news.TagList{}}
	if summary := c.PostForm("summary"); summary != "" {
		n.Summary = &summary
	}
	for _, tag := range strings.Split(c.PostForm("tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			n.Tags = append(n.Tags, tag)
		}
	}

	if fh, err := c.FormFile("photo"); err == nil {
		url, err := uploads.Save(fh, "news", "image")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store photo"})
			return
		}
		n.PhotoURL = &url
	}

	if err := newsRepo.Create(database.DB, &n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}
	c.JSON(http.StatusCreated, newsResponse(&n, i18n.Default))
}

// POST /news/json (accepts nested sections)
func CreateNewsJSON(c *gin.Context) {
	var n news.News
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	n.ID = 0
	for i := range n.Sections {
		n.Sections[i].ID = 0
		n.Sections[i].NewsID = 0
	}

	if err := newsRepo.Create(database.DB, &n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}
	c.JSON(http.StatusCreated, newsResponse(&n, i18n.Default))
}

// POST /news/:id/photo
func UploadNewsPhoto(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := newsRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	url, err := uploads.Save(fh, "news", "image")
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store photo"})
		return
	}

	if _, err := newsRepo.Update(database.DB, id, map[string]any{"photo_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded successfully", "url": url})
}

// GET /news/:id
func GetNews(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	var n news.News
	err := database.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC, id ASC`)
	}).First(&n, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if c.Query("all_languages") == "true" {
		c.JSON(http.StatusOK, gin.H{"id": n.ID, "fields": i18n.AllVersions(&n)})
		return
	}
	c.JSON(http.StatusOK, newsResponse(&n, params.Language(c)))
}

// PUT /news/:id
func UpdateNews(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := repo.FilterColumns(body, newsColumns)
	if tags, ok := fields["tags"]; ok {
		// Route list values through the TagList serializer.
		list := news.TagList{}
		if raw, ok := tags.([]any); ok {
			for _, t := range raw {
				if s, ok := t.(string); ok {
					list = append(list, s)
				}
			}
		}
		fields["tags"] = list
	}

	n, err := newsRepo.Update(database.DB, id, fields)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}
	c.JSON(http.StatusOK, newsResponse(n, params.Language(c)))
}

// DELETE /news/:id
func DeleteNews(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := newsRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// GET /news/:id/sections
func ListNewsSections(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	skip, limit := params.Pagination(c, 100, 1000)

	sections, err := sectionRepo.List(database.DB, repo.ListParams{
		Skip:    skip,
		Limit:   limit,
		Filters: map[string]any{"news_id": id},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news sections"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// POST /news/:id/sections
func CreateNewsSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	if _, err := newsRepo.Get(database.DB, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	var s news.NewsSection
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.ID = 0
	s.NewsID = id

	if err := sectionRepo.Create(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news section"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /news-sections/:id
func GetNewsSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	s, err := sectionRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "News section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news section"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /news-sections/:id
func UpdateNewsSection(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "News section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news section"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /news-sections/:id
func DeleteNewsSection(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := sectionRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "News section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News section deleted successfully"})
}
