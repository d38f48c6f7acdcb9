package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, response.Response) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		c.Error(apperror.New(http.StatusInternalServerError, "SMTP connection failed: timeout", nil))
	})
	r.GET("/fields", func(c *gin.Context) {
		c.Error(apperror.Validation(map[string]string{"name": "Name is required"}, nil))
	})
	r.GET("/raw", func(c *gin.Context) {
		c.Error(errors.New("pq: password authentication failed"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusTeapot, "done")
		c.Error(errors.New("late"))
	})

	t.Run("Should render app errors with their status", func(t *testing.T) {
		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/app", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, body.OK)
		assert.Equal(t, "SMTP connection failed: timeout", body.Error)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("Should render field errors only", func(t *testing.T) {
		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/fields", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, body.Error)
		assert.Equal(t, map[string]string{"name": "Name is required"}, body.Errors)
	})

	t.Run("Should hide unclassified errors", func(t *testing.T) {
		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/raw", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, body.Error, "pq:")
	})

	t.Run("Should leave written responses alone", func(t *testing.T) {
		w, _ := serve(r, httptest.NewRequest(http.MethodGet, "/written", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "done", w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(response.RequestIDKey))
	})

	t.Run("Should mint an ID", func(t *testing.T) {
		w, _ := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Should reuse a valid incoming ID", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)
		w, _ := serve(r, req)
		assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Should replace a malformed incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w, _ := serve(r, req)
		assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(middleware.BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		c.String(http.StatusOK, string(b))
	})

	w, _ := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short")))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("much too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestCORSLocalhost(t *testing.T) {
	newRouter := func(allowLocal bool) *gin.Engine {
		r := gin.New()
		r.Use(middleware.CORSMiddleware(middleware.CORSConfig{AllowLocalhost: allowLocal}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	w, _ := serve(newRouter(true), req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = serve(newRouter(false), req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}
