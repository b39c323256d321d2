//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/handler/middleware"
	"museum-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newErrorHandlerRouter(register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())
	register(r)
	return r
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted request renders the structured error body", func(t *testing.T) {
		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/boom", func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Exhibit not found", nil)
			})
		})

		w := performGet(router, "/boom")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Exhibit not found", body.Error.Message)
	})

	t.Run("registered public error without a write is rendered", func(t *testing.T) {
		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/deferred", func(c *gin.Context) {
				resp := httperr.Response{Status: http.StatusUnprocessableEntity}
				resp.Error.Message = "Selection incomplete"
				_ = c.Error(&gin.Error{Err: errors.New("no day"), Type: gin.ErrorTypePublic, Meta: resp})
			})
		})

		w := performGet(router, "/deferred")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Selection incomplete", body.Error.Message)
	})

	t.Run("silent handler falls back to 500", func(t *testing.T) {
		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/silent", func(c *gin.Context) {})
		})

		w := performGet(router, "/silent")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error.Message)
	})

	t.Run("server errors are logged with their stack", func(t *testing.T) {
		var logBuf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
		defer slog.SetDefault(prev)

		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/fail", func(c *gin.Context) {
				err := errs.Wrap(errors.New("connection reset"), "load exhibit")
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			})
		})

		w := performGet(router, "/fail")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, logBuf.String(), "request failed")
		assert.Contains(t, logBuf.String(), "connection reset")
	})

	t.Run("client errors are not logged", func(t *testing.T) {
		var logBuf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
		defer slog.SetDefault(prev)

		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/missing", func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Exhibit not found", nil)
			})
		})

		w := performGet(router, "/missing")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, logBuf.String(), "request failed")
	})
}

func TestCustomRecovery(t *testing.T) {
	t.Run("panic renders 500 with the structured body", func(t *testing.T) {
		var logBuf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
		defer slog.SetDefault(prev)

		router := newErrorHandlerRouter(func(r *gin.Engine) {
			r.GET("/panic", func(c *gin.Context) {
				panic("unexpected")
			})
		})

		w := performGet(router, "/panic")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
