package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sda-backend/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedRouter(store cache.Cacher) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	calls := 0

	r := gin.New()
	r.GET("/items", CacheResponse(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"call": calls})
	})
	r.GET("/missing", CacheResponse(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})
	r.POST("/items", CacheResponse(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"call": calls})
	})
	return r, &calls
}

func do(r *gin.Engine, method, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCacheResponseServesSecondRequestFromCache(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute)
	defer store.Close()
	r, calls := cachedRouter(store)

	first := do(r, http.MethodGet, "/items")
	require.Equal(t, http.StatusOK, first.Code)

	second := do(r, http.MethodGet, "/items")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
}

func TestCacheResponseSkipsNonGET(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute)
	defer store.Close()
	r, calls := cachedRouter(store)

	do(r, http.MethodPost, "/items")
	do(r, http.MethodPost, "/items")
	assert.Equal(t, 2, *calls)
}

func TestCacheResponseSkipsErrorResponses(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute)
	defer store.Close()
	r, calls := cachedRouter(store)

	do(r, http.MethodGet, "/missing")
	do(r, http.MethodGet, "/missing")
	assert.Equal(t, 2, *calls)
}

func TestCacheResponseNilStorePassesThrough(t *testing.T) {
	r, calls := cachedRouter(nil)

	do(r, http.MethodGet, "/items")
	do(r, http.MethodGet, "/items")
	assert.Equal(t, 2, *calls)
}

func TestCacheResponseKeyIncludesQuery(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute)
	defer store.Close()
	r, calls := cachedRouter(store)

	do(r, http.MethodGet, "/items?language=en")
	do(r, http.MethodGet, "/items?language=ru")
	assert.Equal(t, 2, *calls)

	// Same parameters in a different order hit the same entry.
	do(r, http.MethodGet, "/items?language=en&skip=0")
	before := *calls
	do(r, http.MethodGet, "/items?skip=0&language=en")
	assert.Equal(t, before, *calls)
}

func TestCacheKeyCanonicalizesQueryOrder(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/items?b=2&a=1", nil)
	b := httptest.NewRequest(http.MethodGet, "/items?a=1&b=2", nil)
	assert.Equal(t, cacheKey(a), cacheKey(b))

	c := httptest.NewRequest(http.MethodGet, "/items?a=1&b=3", nil)
	assert.NotEqual(t, cacheKey(a), cacheKey(c))
}

func TestCacheResponseEntriesSurviveWrites(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute)
	defer store.Close()
	r, calls := cachedRouter(store)

	do(r, http.MethodGet, "/items")
	do(r, http.MethodPost, "/items")

	// The write does not purge the cached GET.
	resp := do(r, http.MethodGet, "/items")
	assert.Equal(t, `{"call":1}`, resp.Body.String())
	assert.Equal(t, 2, *calls)
}
