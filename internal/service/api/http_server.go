package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/errcat-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 사용 시 Strict-Transport-Security 헤더의 max-age (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 개발 환경: ["*"] 또는 ["http://localhost:3000"]
	// 프로덕션 환경: 에러 메시지를 사용하는 프론트엔드 도메인만 명시
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 constants.DefaultRequestTimeout)
	RequestTimeout time.Duration

	// RequestsPerSecond, Burst IP별 요청 속도 제한
	RequestsPerSecond float64
	Burst             int

	// EnableHSTS Strict-Transport-Security 헤더 추가 여부 (TLS 서버에서만 켭니다)
	EnableHSTS bool
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id가 남도록 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimit/Timeout보다 먼저 적용
//  5. RateLimit - IP별 초당 요청 수 제한, 초과 시 429
//  6. BodyLimit - 조회 전용 API이므로 작은 본문만 허용, 초과 시 413
//  7. Timeout - 초과 시 503
//  8. CORS - GET/HEAD/OPTIONS만 허용
//  9. Secure - 보안 헤더 (TLS 사용 시 HSTS 포함)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	for _, s := range []*http.Server{e.Server, e.TLSServer} {
		s.ReadTimeout = constants.DefaultReadTimeout
		s.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
		s.WriteTimeout = constants.DefaultWriteTimeout
		s.IdleTimeout = constants.DefaultIdleTimeout
	}

	// Echo 내부 로그도 애플리케이션 로거로 출력합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(cfg.RequestsPerSecond, cfg.Burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{constants.ContentLanguage, echo.HeaderXRequestID},
	}))

	secure := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secure))

	return e
}
