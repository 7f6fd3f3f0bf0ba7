package uploadsapi

import (
	"net/http"

	"sda-backend/internal/uploads"

	"github.com/gin-gonic/gin"
)

// POST /upload?type=image
//
// Generic upload endpoint kept for admin tooling that does not go through
// an entity-specific route. Files land in the resources directory and are
// served under /resources.
func Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := uploads.SaveResource(fh, c.DefaultQuery("type", "image"))
	if err != nil {
		c.JSON(uploads.HTTPStatus(err), gin.H{"error": "Failed to store file"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
