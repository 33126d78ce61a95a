// Package v1 /api/v1 경로 하위의 에러 카탈로그 조회 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET /api/v1/errors          - 에러 목록 조회 (category 필터 지원)
//   - GET /api/v1/errors/:code    - 에러 코드 해석
//
// 조회 전용 API이므로 인증을 요구하지 않습니다.
package v1

import (
	"github.com/darkkaiser/errcat-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/errors", h.ListErrorsHandler)
	v1Group.GET("/errors/:code", h.ResolveErrorHandler)
}
