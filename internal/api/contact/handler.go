package contactapi

import (
	"errors"
	"net/http"
	"strings"

	"sda-backend/database"
	"sda-backend/internal/api/params"
	"sda-backend/internal/domain/contact"
	"sda-backend/internal/repo"
	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
)

var messageRepo = repo.Repository[contact.ContactMessage]{
	DefaultOrder: "created_at DESC",
	Filterable:   map[string]string{"status": "status"},
	Orderable: map[string]string{
		"created_at": "created_at",
		"status":     "status",
	},
	MaxLimit: 1000,
}

var messageColumns = repo.Columns(
	"first_name", "last_name", "phone_number", "email", "message",
	"is_read", "status",
)

// POST /contact (public, multipart form with optional CV)
func SubmitContactMessage(c *gin.Context) {
	firstName := strings.TrimSpace(c.PostForm("first_name"))
	lastName := strings.TrimSpace(c.PostForm("last_name"))
	email := strings.TrimSpace(c.PostForm("email"))
	if firstName == "" || lastName == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first_name, last_name and email are required"})
		return
	}

	m := contact.ContactMessage{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Status:    contact.StatusNew,
	}
	if phone := strings.TrimSpace(c.PostForm("phone_number")); phone != "" {
		m.PhoneNumber = &phone
	}
	if msg := strings.TrimSpace(c.PostForm("message")); msg != "" {
		m.Message = &msg
	}

	if fh, err := c.FormFile("cv"); err == nil {
		url, err := uploads.Save(fh, "contact/cv", "document")
		if err != nil {
			c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store CV"})
			return
		}
		m.CvURL = &url
	}

	if err := messageRepo.Create(database.DB, &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /contact (admin)
func ListContactMessages(c *gin.Context) {
	skip, limit := params.Pagination(c, 100, 1000)

	filters := map[string]any{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}

	items, err := messageRepo.List(database.DB, repo.ListParams{
		Skip:      skip,
		Limit:     limit,
		OrderBy:   c.Query("order_by"),
		Direction: c.DefaultQuery("direction", "desc"),
		Filters:   filters,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /contact/unread (admin)
func CountUnreadMessages(c *gin.Context) {
	var count int64
	err := database.DB.Model(&contact.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// GET /contact/:id (admin)
func GetContactMessage(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	m, err := messageRepo.Get(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load message"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// PUT /contact/:id (admin)
func UpdateContactMessage(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := repo.FilterColumns(body, messageColumns)
	// Keep the status string and the is_read flag consistent whichever one
	// the client sends.
	if read, ok := fields["is_read"].(bool); ok {
		if read {
			fields["status"] = contact.StatusRead
		} else {
			fields["status"] = contact.StatusNew
		}
	} else if status, ok := fields["status"].(string); ok {
		fields["is_read"] = status == contact.StatusRead
	}

	m, err := messageRepo.Update(database.DB, id, fields)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /contact/:id/read (admin)
func MarkContactMessageRead(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	m, err := messageRepo.Update(database.DB, id, map[string]any{
		"is_read": true,
		"status":  contact.StatusRead,
	})
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /contact/:id (admin)
func DeleteContactMessage(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}
	err := messageRepo.Delete(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
