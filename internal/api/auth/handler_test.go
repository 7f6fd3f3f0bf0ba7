package authapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sda-backend/config"
	"sda-backend/database"
	"sda-backend/internal/app/http/middleware"
	"sda-backend/internal/domain/admins"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&admins.AdminUser{}))
	database.DB = db

	require.NoError(t, admins.EnsureDefaultAdmin(db, "admin@example.com", "s3cret"))

	r := gin.New()
	r.POST("/auth/login", Login)
	r.GET("/auth/me", middleware.AuthMiddleware(), Me)
	return r
}

func postLogin(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r := setup(t)

	w := postLogin(r, gin.H{"email": "admin@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	// The issued token works against a guarded route.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, req)
	require.Equal(t, http.StatusOK, mw.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(mw.Body.Bytes(), &me))
	require.Equal(t, "admin@example.com", me["email"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setup(t)

	w := postLogin(r, gin.H{"email": "admin@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	r := setup(t)

	w := postLogin(r, gin.H{"email": "ghost@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidatesBody(t *testing.T) {
	r := setup(t)

	w := postLogin(r, gin.H{"email": "not-an-email", "password": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postLogin(r, gin.H{"email": "admin@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	setup(t)

	require.NoError(t, admins.EnsureDefaultAdmin(database.DB, "admin@example.com", "s3cret"))

	var count int64
	require.NoError(t, database.DB.Model(&admins.AdminUser{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
