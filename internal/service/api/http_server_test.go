package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 100
	}
	if cfg.Burst == 0 {
		cfg.Burst = 100
	}
	if cfg.AllowOrigins == nil {
		cfg.AllowOrigins = []string{"*"}
	}
	return NewHTTPServer(cfg)
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config HTTPServerConfig
	}{
		{"Debug 모드 활성화", HTTPServerConfig{Debug: true}},
		{"Debug 모드 비활성화", HTTPServerConfig{Debug: false, AllowOrigins: []string{"http://example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.config.Debug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.NotNil(t, e.Logger)
			assert.NotNil(t, e.HTTPErrorHandler)

			for _, s := range []*http.Server{e.Server, e.TLSServer} {
				assert.Equal(t, constants.DefaultReadTimeout, s.ReadTimeout)
				assert.Equal(t, constants.DefaultReadHeaderTimeout, s.ReadHeaderTimeout)
				assert.Equal(t, constants.DefaultWriteTimeout, s.WriteTimeout)
				assert.Equal(t, constants.DefaultIdleTimeout, s.IdleTimeout)
			}
		})
	}
}

func TestNewHTTPServer_InvalidRateLimit(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestsPerSecond: 0, Burst: 1})
	})
}

// =============================================================================
// Middleware Tests
// =============================================================================

func TestNewHTTPServer_Headers(t *testing.T) {
	t.Parallel()

	t.Run("보안 헤더와 Request ID", func(t *testing.T) {
		t.Parallel()

		e := newTestHTTPServer(HTTPServerConfig{})
		e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "TLS가 아니면 HSTS를 보내지 않습니다")
	})

	t.Run("HSTS 활성화", func(t *testing.T) {
		t.Parallel()

		e := newTestHTTPServer(HTTPServerConfig{EnableHSTS: true})
		e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

		req := httptest.NewRequest(http.MethodGet, "https://localhost/ping", nil)
		req.Header.Set(echo.HeaderXForwardedProto, "https")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Contains(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "max-age=31536000")
	})
}

func TestNewHTTPServer_CORS(t *testing.T) {
	t.Parallel()

	e := newTestHTTPServer(HTTPServerConfig{AllowOrigins: []string{"https://editor.example.com"}})
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://editor.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://editor.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	allowed := rec.Header().Get(echo.HeaderAccessControlAllowMethods)
	assert.Contains(t, allowed, http.MethodGet)
	assert.NotContains(t, allowed, http.MethodPost)
}

func TestNewHTTPServer_RateLimit(t *testing.T) {
	t.Parallel()

	e := newTestHTTPServer(HTTPServerConfig{RequestsPerSecond: 0.001, Burst: 2})
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	t.Parallel()

	e := newTestHTTPServer(HTTPServerConfig{})
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	body := strings.NewReader(strings.Repeat("x", 17*1024))
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewHTTPServer_Timeout(t *testing.T) {
	t.Parallel()

	e := newTestHTTPServer(HTTPServerConfig{RequestTimeout: 20 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
		case <-time.After(time.Second):
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.ErrMsgServiceUnavailable)
}

func TestNewHTTPServer_NotFound(t *testing.T) {
	t.Parallel()

	e := newTestHTTPServer(HTTPServerConfig{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.ErrMsgNotFound)
}
