package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/darkkaiser/errcat-server/internal/service/api/httputil"
	"github.com/darkkaiser/errcat-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// =============================================================================
// ipRateLimiter
// =============================================================================

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(2.5, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(2.5), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Zero(t, limiter.size())
}

func TestIPRateLimiter_GetLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	a1 := limiter.getLimiter("10.0.0.1")
	a2 := limiter.getLimiter("10.0.0.1")
	b := limiter.getLimiter("10.0.0.2")

	assert.Same(t, a1, a2, "같은 IP는 같은 Limiter를 사용해야 합니다")
	assert.NotSame(t, a1, b)
	assert.Equal(t, 2, limiter.size())
}

func TestIPRateLimiter_Eviction(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)
	for i := 0; i < maxIPRateLimiters+100; i++ {
		limiter.getLimiter(fmt.Sprintf("ip-%d", i))
	}

	assert.Equal(t, maxIPRateLimiters, limiter.size(), "최대 개수를 넘지 않아야 합니다")
}

func TestIPRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			limiter.getLimiter(fmt.Sprintf("ip-%d", i%5))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, limiter.size())
}

// =============================================================================
// RateLimit 미들웨어
// =============================================================================

func TestRateLimit_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rps     float64
		burst   int
		message string
	}{
		{"RPS 0", 0, 20, "requestsPerSecond는 양수여야 합니다"},
		{"RPS 음수", -1.5, 20, "requestsPerSecond는 양수여야 합니다"},
		{"Burst 0", 10, 0, "burst는 양수여야 합니다"},
		{"Burst 음수", 10, -3, "burst는 양수여야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				require.NotNil(t, r, "panic이 발생해야 합니다")
				assert.Contains(t, fmt.Sprint(r), tt.message)
			}()
			RateLimit(tt.rps, tt.burst)
		})
	}

	assert.NotPanics(t, func() { RateLimit(0.5, 1) })
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(RateLimit(0.001, 3))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("192.0.2.1").Code, "버스트 이내 요청 #%d", i+1)
	}

	rec := do("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, retryAfterSeconds, rec.Header().Get("Retry-After"))

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusTooManyRequests, resp.ResultCode)

	assert.Equal(t, http.StatusOK, do("192.0.2.2").Code, "다른 IP는 독립적으로 제한됩니다")
}
