// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/pkg/locale"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// maxLoggedCodeLength 로그에 남길 에러 코드의 최대 길이
const maxLoggedCodeLength = 128

// Handler 에러 카탈로그 조회 요청을 처리합니다.
type Handler struct {
	catalog    *catalog.Catalog
	negotiator locale.Negotiator
}

// New Handler 인스턴스를 생성합니다.
// negotiator는 lang 파라미터와 Accept-Language 헤더가 모두 없을 때 사용할 기본 언어를 결정합니다.
func New(cat *catalog.Catalog, negotiator locale.Negotiator) *Handler {
	if cat == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog:    cat,
		negotiator: negotiator,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
