// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/pkg/version"
	"github.com/darkkaiser/errcat-server/internal/service"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog *catalog.Catalog

	// dependencies 헬스체크 대상 외부 의존성 (키: 의존성 이름)
	dependencies map[string]service.HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다. dependencies는 비어 있을 수 있습니다.
func New(cat *catalog.Catalog, buildInfo version.Info, dependencies map[string]service.HealthChecker) *Handler {
	if cat == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	deps := make(map[string]service.HealthChecker, len(dependencies))
	for name, checker := range dependencies {
		if checker != nil {
			deps[name] = checker
		}
	}

	return &Handler{
		catalog: cat,

		dependencies: deps,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - catalog_size: 카탈로그에 등록된 에러 코드 수
// @Description - dependencies: 외부 의존성별 상태 (companion_server, 동반 서버 헬스체크가 활성화된 경우)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	serverStatus := constants.HealthStatusHealthy

	var deps map[string]system.DependencyStatus
	if len(h.dependencies) > 0 {
		deps = make(map[string]system.DependencyStatus, len(h.dependencies))

		for name, checker := range h.dependencies {
			if err := checker.Health(); err != nil {
				deps[name] = system.DependencyStatus{
					Status:  constants.HealthStatusUnhealthy,
					Message: err.Error(),
				}
				serverStatus = constants.HealthStatusUnhealthy
				continue
			}

			deps[name] = system.DependencyStatus{
				Status:  constants.HealthStatusHealthy,
				Message: constants.MsgDepStatusHealthy,
			}
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		CatalogSize:  h.catalog.Len(),
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전, 실행 환경을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		OS:          h.buildInfo.OS,
		Arch:        h.buildInfo.Arch,
	})
}
