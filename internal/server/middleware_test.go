package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs non-GET requests with body", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)

		router := gin.New()
		router.Use(requestLogger(zap.New(core)))

		var seenBody []byte
		router.POST("/api/send", func(c *gin.Context) {
			seenBody, _ = io.ReadAll(c.Request.Body)
			c.Status(http.StatusOK)
		})

		body := `{"carNumber":"12가3456"}`
		req := httptest.NewRequest(http.MethodPost, "/api/send", bytes.NewBufferString(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		// The handler still sees the full body after it was logged.
		assert.Equal(t, body, string(seenBody))

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "request", entries[0].Message)

		fields := entries[0].ContextMap()
		assert.Equal(t, http.MethodPost, fields["method"])
		assert.Equal(t, "/api/send", fields["path"])
		assert.Equal(t, body, fields["body"])
	})

	t.Run("skips GET requests", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)

		router := gin.New()
		router.Use(requestLogger(zap.New(core)))
		router.GET("/healthz", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Zero(t, logs.Len())
	})
}
