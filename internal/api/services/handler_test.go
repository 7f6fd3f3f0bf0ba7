package servicesapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sda-backend/database"
	"sda-backend/internal/domain/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&services.Service{}, &services.ServiceBenefit{}))
	database.DB = db

	r := gin.New()
	r.GET("/services", ListServices)
	r.POST("/services/json", CreateServiceJSON)
	r.GET("/services/:id", GetService)
	r.GET("/services/slug/:slug", GetServiceBySlug)
	r.PATCH("/services/:id", UpdateService)
	r.DELETE("/services/:id", DeleteService)
	return r
}

func doJSON(r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedService(t *testing.T, s services.Service) services.Service {
	t.Helper()
	require.NoError(t, database.DB.Create(&s).Error)
	return s
}

func strp(s string) *string { return &s }

func TestCreateServiceJSON(t *testing.T) {
	r := setup(t)

	w := doJSON(r, http.MethodPost, "/services/json", gin.H{
		"slug":    "design",
		"name_en": "Design",
		"name_ru": "Дизайн",
		"order":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "design", resp["slug"])
	require.Equal(t, "Design", resp["name"])
	require.NotZero(t, resp["id"])
}

func TestCreateServiceJSONRequiresSlug(t *testing.T) {
	r := setup(t)

	w := doJSON(r, http.MethodPost, "/services/json", gin.H{"name_en": "Design"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetServiceResolvesLanguage(t *testing.T) {
	r := setup(t)
	s := seedService(t, services.Service{
		Slug:   "design",
		NameEn: strp("Design"),
		NameRu: strp("Дизайн"),
	})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/services/%d?language=ru", s.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Дизайн", resp["name"])

	// Missing variant falls back to the default language.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/services/%d?language=az", s.ID), nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Design", resp["name"])
}

func TestGetServiceAllLanguages(t *testing.T) {
	r := setup(t)
	s := seedService(t, services.Service{
		Slug:   "design",
		NameEn: strp("Design"),
		NameAz: strp("Dizayn"),
	})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/services/%d?all_languages=true", s.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Fields map[string]map[string]*string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Design", *resp.Fields["name"]["en"])
	require.Equal(t, "Dizayn", *resp.Fields["name"]["az"])
	require.Nil(t, resp.Fields["name"]["ru"])
}

func TestGetServiceNotFound(t *testing.T) {
	r := setup(t)
	w := doJSON(r, http.MethodGet, "/services/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetServiceInvalidID(t *testing.T) {
	r := setup(t)
	w := doJSON(r, http.MethodGet, "/services/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetServiceBySlug(t *testing.T) {
	r := setup(t)
	seedService(t, services.Service{Slug: "design", NameEn: strp("Design")})

	w := doJSON(r, http.MethodGet, "/services/slug/design", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/services/slug/absent", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListServicesOrderedAndPaginated(t *testing.T) {
	r := setup(t)
	seedService(t, services.Service{Slug: "c", Order: 3})
	seedService(t, services.Service{Slug: "a", Order: 1})
	seedService(t, services.Service{Slug: "b", Order: 2})

	w := doJSON(r, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	require.Equal(t, "a", resp[0]["slug"])
	require.Equal(t, "b", resp[1]["slug"])
	require.Equal(t, "c", resp[2]["slug"])

	w = doJSON(r, http.MethodGet, "/services?skip=1&limit=1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, "b", resp[0]["slug"])
}

func TestUpdateServicePartialMerge(t *testing.T) {
	r := setup(t)
	s := seedService(t, services.Service{
		Slug:   "design",
		NameEn: strp("Design"),
		Order:  5,
	})

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/services/%d", s.ID), gin.H{
		"name_en": "New Design",
		"id":      999,
		"bogus":   "ignored",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored services.Service
	require.NoError(t, database.DB.First(&stored, s.ID).Error)
	require.Equal(t, "New Design", *stored.NameEn)
	require.Equal(t, "design", stored.Slug)
	require.Equal(t, 5, stored.Order)
	require.Equal(t, s.ID, stored.ID)
}

func TestUpdateServiceNotFound(t *testing.T) {
	r := setup(t)
	w := doJSON(r, http.MethodPatch, "/services/999", gin.H{"slug": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteService(t *testing.T) {
	r := setup(t)
	s := seedService(t, services.Service{Slug: "design"})

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/services/%d", s.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/services/%d", s.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
