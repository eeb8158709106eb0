package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sonomandeep/Moon/config"
	"github.com/sonomandeep/Moon/utils"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var got uint
	r.GET("/things/:id", ValidateID(), func(c *gin.Context) {
		got = GetID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint(42), got)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/not-an-id", nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "You must pass a valid id")
}

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var got utils.Pagination
	r.GET("/things", Paginate(), func(c *gin.Context) {
		got = GetPagination(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things?limit=5&skip=3", nil))
	require.Equal(t, utils.Pagination{Limit: 5, Skip: 3}, got)

	// Garbage input falls back silently instead of failing the request.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things?limit=abc&skip=", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, utils.Pagination{Limit: config.DefaultLimit, Skip: config.DefaultSkip}, got)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Auth(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "You must pass an authorization token")
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Auth(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "You must pass a valid token")
}
