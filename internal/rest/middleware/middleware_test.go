package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(log), ErrorHandler(log))
	r.GET("/test", handler)
	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(types.HeaderRequestID, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		message  string
		internal bool
	}{
		{
			name:     "validation",
			err:      ierr.NewError("distance must not be negative").WithHint("Distance must not be negative").Mark(ierr.ErrInvalidQuantity),
			status:   http.StatusBadRequest,
			message:  "Distance must not be negative",
			internal: true,
		},
		{
			name:     "not found",
			err:      ierr.NewError("rental not found").WithHint("Rental not found").Mark(ierr.ErrNotFound),
			status:   http.StatusNotFound,
			message:  "Rental not found",
			internal: true,
		},
		{
			name:    "internal",
			err:     ierr.NewError("boom").Mark(ierr.ErrInternal),
			status:  http.StatusInternalServerError,
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(func(c *gin.Context) {
				c.Error(tt.err)
			})
			w := serve(r, "")

			assert.Equal(t, tt.status, w.Code)

			var resp ierr.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error.Display)
			assert.Equal(t, tt.internal, resp.Error.InternalError != "")
		})
	}
}

func TestErrorHandler_NoError(t *testing.T) {
	r := newTestEngine(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	w := serve(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	r := newTestEngine(func(c *gin.Context) {
		seen = types.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := serve(r, "req_from_client")
	assert.Equal(t, "req_from_client", seen)
	assert.Equal(t, "req_from_client", w.Header().Get(types.HeaderRequestID))

	w = serve(r, "")
	assert.True(t, strings.HasPrefix(seen, "req_"))
	assert.Equal(t, seen, w.Header().Get(types.HeaderRequestID))
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(log), ErrorHandler(log))
	r.GET("/v1/quotes/:id", func(c *gin.Context) {
		c.Error(ierr.NewError("bad").WithHint("Bad").Mark(ierr.ErrValidation))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/7?format=csv", nil)
	req.Header.Set(types.HeaderRequestID, "req_log")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP_REQUEST_WARNING").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/v1/quotes/:id", fields["route"])
	assert.Equal(t, "/v1/quotes/7", fields["path"])
	assert.Equal(t, "csv", fields["format"])
	assert.Equal(t, "req_log", fields["request_id"])
	assert.EqualValues(t, http.StatusBadRequest, fields["status"])
	assert.Contains(t, fields["errors"], "bad")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	entries = logs.FilterMessage("HTTP_REQUEST_WARNING").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "unmatched", entries[1].ContextMap()["route"])
}
