package handler

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/pkg/locale"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/darkkaiser/errcat-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// ResolveErrorHandler godoc
// @Summary 에러 코드 해석
// @Description 에러 코드를 사용자에게 보여줄 메시지, 해결 방법 제안, 동작 버튼 문구로 변환합니다.
// @Description
// @Description 응답 언어는 lang 파라미터, Accept-Language 헤더, 서버 기본 언어 순으로 결정됩니다.
// @Description 코드는 대소문자와 공백까지 정확히 일치해야 합니다.
// @Description 등록되지 않은 코드는 실패하지 않고 UNKNOWN_ERROR 항목으로 응답하며 fallback이 true가 됩니다.
// @Description
// @Description ```bash
// @Description curl "http://localhost:2443/api/v1/errors/SESSION_EXPIRED?lang=en"
// @Description ```
// @Tags Errors
// @Produce json
// @Param code path string true "에러 코드" example(SESSION_EXPIRED)
// @Param lang query string false "응답 언어 (ko, en 또는 BCP 47 태그)" example(en)
// @Param Accept-Language header string false "lang 파라미터가 없을 때 사용할 언어 목록" example(en-US,en;q=0.9)
// @Success 200 {object} response.ErrorBundle "해석 결과"
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 언어 또는 빈 코드"
// @Failure 429 {object} response.ErrorResponse "요청 한도 초과"
// @Router /api/v1/errors/{code} [get]
func (h *Handler) ResolveErrorHandler(c echo.Context) error {
	// 코드는 정확히 일치해야 하므로 공백을 제거하지 않습니다.
	code := c.Param(constants.ParamCode)
	if code == "" {
		return NewErrInvalidErrorCode(code)
	}

	lang, err := h.negotiate(c)
	if err != nil {
		return err
	}

	bundle := h.bundle(catalog.Code(code), lang)

	entry := h.log(c).WithFields(applog.Fields{
		"code":     strutil.Truncate(code, maxLoggedCodeLength),
		"language": lang,
		"fallback": bundle.Fallback,
	})
	if bundle.Fallback {
		entry.Info(constants.LogMsgErrorFallback)
	} else {
		entry.Debug(constants.LogMsgErrorResolved)
	}

	c.Response().Header().Set(constants.ContentLanguage, lang.String())

	return c.JSON(http.StatusOK, bundle)
}

// ListErrorsHandler godoc
// @Summary 에러 목록 조회
// @Description 카탈로그의 모든 에러 코드(또는 한 카테고리의 코드)를 지정한 언어로 해석하여 코드 순으로 반환합니다.
// @Description 카테고리 이름은 대소문자와 표기 방식을 구분하지 않습니다 (예: Network, network).
// @Tags Errors
// @Produce json
// @Param category query string false "카테고리 이름" example(auth)
// @Param lang query string false "응답 언어 (ko, en 또는 BCP 47 태그)" example(ko)
// @Param Accept-Language header string false "lang 파라미터가 없을 때 사용할 언어 목록" example(ko-KR)
// @Success 200 {object} response.ErrorList "해석 결과 목록"
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 언어"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 카테고리"
// @Router /api/v1/errors [get]
func (h *Handler) ListErrorsHandler(c echo.Context) error {
	lang, err := h.negotiate(c)
	if err != nil {
		return err
	}

	category := strings.TrimSpace(c.QueryParam(constants.QueryCategory))

	var codes []catalog.Code
	if category == "" {
		codes = h.catalog.Codes()
	} else {
		if !h.catalog.HasCategory(category) {
			return NewErrCategoryNotFound(category)
		}
		codes = h.catalog.CodesIn(category)
	}

	list := response.ErrorList{
		Language: lang.String(),
		Category: category,
		Count:    len(codes),
		Errors:   make([]response.ErrorBundle, 0, len(codes)),
	}
	for _, code := range codes {
		list.Errors = append(list.Errors, h.bundle(code, lang))
	}

	h.log(c).WithFields(applog.Fields{
		"category": category,
		"language": lang,
		"count":    list.Count,
	}).Debug(constants.LogMsgErrorListServed)

	c.Response().Header().Set(constants.ContentLanguage, lang.String())

	return c.JSON(http.StatusOK, list)
}

// negotiate 요청의 응답 언어를 결정합니다.
// lang 파라미터가 주어졌는데 지원하지 않는 언어이면 400 에러를 반환합니다.
func (h *Handler) negotiate(c echo.Context) (catalog.Language, error) {
	explicit := strings.TrimSpace(c.QueryParam(constants.QueryLang))
	if explicit != "" {
		if _, ok := locale.Parse(explicit); !ok {
			return "", NewErrUnsupportedLanguage(explicit)
		}
	}

	return h.negotiator.Negotiate(explicit, c.Request().Header.Get(constants.AcceptLanguage)), nil
}

// bundle 코드를 lang으로 해석한 응답 모델을 만듭니다.
func (h *Handler) bundle(code catalog.Code, lang catalog.Language) response.ErrorBundle {
	fallback := !h.catalog.Has(code)

	origin := code
	if fallback {
		origin = catalog.FallbackCode
	}
	category, _ := h.catalog.CategoryOf(origin)

	resolved := h.catalog.Resolve(code, lang)

	return response.ErrorBundle{
		Code:       string(code),
		Category:   category,
		Language:   lang.String(),
		Fallback:   fallback,
		Message:    resolved.Message,
		Suggestion: resolved.Suggestion,
		Action:     resolved.Action,
	}
}
