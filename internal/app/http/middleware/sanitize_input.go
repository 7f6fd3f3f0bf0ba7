package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware strips markup from all string fields of
// public submissions using bluemonday's strict policy. JSON bodies are
// rewritten; form and multipart bodies are sanitized in place (file parts
// stay untouched).
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		contentType := c.ContentType()
		if strings.Contains(contentType, "multipart/form-data") ||
			strings.Contains(contentType, "application/x-www-form-urlencoded") {
			if !sanitizeFormValues(c) {
				return
			}
			c.Next()
			return
		}
		if !strings.Contains(contentType, "application/json") {
			c.Next()
			return
		}

		var body map[string]interface{}
		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		policy := bluemonday.StrictPolicy()
		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = policy.Sanitize(str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// sanitizeFormValues parses the form eagerly and rewrites its string values.
// Handlers reading c.PostForm afterwards see the sanitized values because
// net/http keeps the parsed form on the request.
func sanitizeFormValues(c *gin.Context) bool {
	var err error
	if strings.Contains(c.ContentType(), "multipart/form-data") {
		err = c.Request.ParseMultipartForm(32 << 20)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return false
	}

	policy := bluemonday.StrictPolicy()
	for _, vals := range c.Request.PostForm {
		for i, v := range vals {
			vals[i] = policy.Sanitize(v)
		}
	}
	if c.Request.MultipartForm != nil {
		for _, vals := range c.Request.MultipartForm.Value {
			for i, v := range vals {
				vals[i] = policy.Sanitize(v)
			}
		}
	}
	return true
}
