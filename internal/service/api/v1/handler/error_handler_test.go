package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/pkg/locale"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	apiresponse "github.com/darkkaiser/errcat-server/internal/service/api/model/response"
	"github.com/darkkaiser/errcat-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestHandler(t *testing.T, fallback catalog.Language) *Handler {
	t.Helper()

	cat, err := catalog.New(catalog.Builtin()...)
	require.NoError(t, err)
	return New(cat, locale.NewNegotiator(fallback))
}

func newContext(target, acceptLanguage string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set(constants.AcceptLanguage, acceptLanguage)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func resolve(h *Handler, code, query, acceptLanguage string) (*httptest.ResponseRecorder, error) {
	target := "/api/v1/errors/" + url.PathEscape(code)
	if query != "" {
		target += "?" + query
	}
	c, rec := newContext(target, acceptLanguage)
	c.SetPath("/api/v1/errors/:code")
	c.SetParamNames(constants.ParamCode)
	c.SetParamValues(code)

	return rec, h.ResolveErrorHandler(c)
}

func requireHTTPError(t *testing.T, err error, code int, msgSubstr string) {
	t.Helper()

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "echo.HTTPError 타입이어야 합니다")
	assert.Equal(t, code, httpErr.Code)

	body, ok := httpErr.Message.(apiresponse.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, code, body.ResultCode)
	assert.Contains(t, body.Message, msgSubstr)
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew_PanicsWithoutCatalog(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgCatalogRequired, func() {
		New(nil, locale.NewNegotiator(catalog.Korean))
	})
}

// =============================================================================
// ResolveErrorHandler Tests
// =============================================================================

func TestResolveErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		code           string
		query          string
		acceptLanguage string
		fallback       catalog.Language

		wantLanguage   string
		wantCategory   string
		wantFallback   bool
		wantMessage    string
		wantSuggestion string
		wantAction     string
	}{
		{
			name:           "기본 언어(ko)로 해석",
			code:           "SESSION_EXPIRED",
			fallback:       catalog.Korean,
			wantLanguage:   "ko",
			wantCategory:   catalog.CategoryAuth,
			wantMessage:    "세션이 만료되었습니다",
			wantSuggestion: "다시 로그인해주세요",
			wantAction:     "다시 로그인",
		},
		{
			name:           "lang 파라미터 우선",
			code:           "SESSION_EXPIRED",
			query:          "lang=en",
			acceptLanguage: "ko-KR",
			fallback:       catalog.Korean,
			wantLanguage:   "en",
			wantCategory:   catalog.CategoryAuth,
			wantMessage:    "Session expired",
			wantSuggestion: "Please log in again",
			wantAction:     "Log In Again",
		},
		{
			name:           "BCP 47 태그 lang 파라미터",
			code:           "FORBIDDEN",
			query:          "lang=en-US",
			fallback:       catalog.Korean,
			wantLanguage:   "en",
			wantCategory:   catalog.CategoryAuth,
			wantMessage:    "You do not have permission",
			wantSuggestion: "Please contact an administrator if you need access",
			wantAction:     "Go Back",
		},
		{
			name:           "Accept-Language 헤더 사용",
			code:           "UNAUTHORIZED",
			acceptLanguage: "fr-FR,en;q=0.8",
			fallback:       catalog.Korean,
			wantLanguage:   "en",
			wantCategory:   catalog.CategoryAuth,
			wantMessage:    "You need to log in",
			wantSuggestion: "Please log in to continue",
			wantAction:     "Log In",
		},
		{
			name:           "등록되지 않은 코드는 대체 항목으로 응답",
			code:           "NO_SUCH_CODE",
			fallback:       catalog.English,
			wantLanguage:   "en",
			wantCategory:   catalog.CategoryGeneral,
			wantFallback:   true,
			wantMessage:    "An unknown error occurred",
			wantSuggestion: "Please refresh the page or try again later",
			wantAction:     "Refresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, tt.fallback)
			rec, err := resolve(h, tt.code, tt.query, tt.acceptLanguage)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLanguage, rec.Header().Get(constants.ContentLanguage))

			var bundle response.ErrorBundle
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))

			assert.Equal(t, tt.code, bundle.Code, "요청한 코드를 그대로 돌려줘야 합니다")
			assert.Equal(t, tt.wantLanguage, bundle.Language)
			assert.Equal(t, tt.wantCategory, bundle.Category)
			assert.Equal(t, tt.wantFallback, bundle.Fallback)
			assert.Equal(t, tt.wantMessage, bundle.Message)
			if assert.NotNil(t, bundle.Suggestion) {
				assert.Equal(t, tt.wantSuggestion, *bundle.Suggestion)
			}
			if assert.NotNil(t, bundle.Action) {
				assert.Equal(t, tt.wantAction, *bundle.Action)
			}
		})
	}
}

func TestResolveErrorHandler_Errors(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, catalog.Korean)

	t.Run("지원하지 않는 lang 파라미터", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(h, "SESSION_EXPIRED", "lang=fr", "")
		requireHTTPError(t, err, http.StatusBadRequest, "lang: fr")
	})

	t.Run("형식이 잘못된 lang 파라미터", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(h, "SESSION_EXPIRED", "lang=%21%21", "")
		requireHTTPError(t, err, http.StatusBadRequest, "지원하지 않는 언어")
	})

	t.Run("빈 코드", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(h, "", "", "")
		requireHTTPError(t, err, http.StatusBadRequest, "에러 코드 형식")
	})
}

func TestResolveErrorHandler_ExactMatch(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, catalog.English)

	codes := []string{
		" SESSION_EXPIRED",
		"SESSION_EXPIRED ",
		"\tSESSION_EXPIRED\n",
		"   ",
		"session_expired",
		strings.Repeat("A", maxLoggedCodeLength+1),
	}

	for _, code := range codes {
		t.Run(strconv.Quote(code), func(t *testing.T) {
			t.Parallel()

			rec, err := resolve(h, code, "lang=en", "")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)

			var bundle response.ErrorBundle
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
			assert.Equal(t, code, bundle.Code, "요청한 코드를 가공하지 않고 돌려줘야 합니다")
			assert.True(t, bundle.Fallback)
			assert.Equal(t, catalog.CategoryGeneral, bundle.Category)
			assert.Equal(t, h.catalog.MessageText(catalog.Code(code), catalog.English), bundle.Message)
			assert.Equal(t, "An unknown error occurred", bundle.Message)
		})
	}
}

// =============================================================================
// ListErrorsHandler Tests
// =============================================================================

func TestListErrorsHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, catalog.Korean)

	t.Run("전체 목록은 코드 순으로 정렬", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext("/api/v1/errors?lang=en", "")
		require.NoError(t, h.ListErrorsHandler(c))

		var list response.ErrorList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))

		assert.Equal(t, "en", list.Language)
		assert.Empty(t, list.Category)
		assert.Equal(t, h.catalog.Len(), list.Count)
		require.Len(t, list.Errors, list.Count)

		for i := 1; i < len(list.Errors); i++ {
			assert.Less(t, list.Errors[i-1].Code, list.Errors[i].Code)
		}
		for _, bundle := range list.Errors {
			assert.False(t, bundle.Fallback)
			assert.Equal(t, "en", bundle.Language)
			assert.NotEmpty(t, bundle.Message)
		}
	})

	t.Run("카테고리 필터 (대소문자 무시)", func(t *testing.T) {
		t.Parallel()

		c, rec := newContext("/api/v1/errors?category=Auth", "ko")
		require.NoError(t, h.ListErrorsHandler(c))
		assert.Equal(t, "ko", rec.Header().Get(constants.ContentLanguage))

		var list response.ErrorList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))

		assert.Equal(t, "Auth", list.Category)
		require.NotEmpty(t, list.Errors)
		for _, bundle := range list.Errors {
			assert.Equal(t, catalog.CategoryAuth, bundle.Category)
		}
		assert.Contains(t, codesOf(list), "SESSION_EXPIRED")
	})

	t.Run("등록되지 않은 카테고리", func(t *testing.T) {
		t.Parallel()

		c, _ := newContext("/api/v1/errors?category=billing", "")
		requireHTTPError(t, h.ListErrorsHandler(c), http.StatusNotFound, "category: billing")
	})

	t.Run("지원하지 않는 언어", func(t *testing.T) {
		t.Parallel()

		c, _ := newContext("/api/v1/errors?lang=ja", "")
		requireHTTPError(t, h.ListErrorsHandler(c), http.StatusBadRequest, "lang: ja")
	})
}

func codesOf(list response.ErrorList) []string {
	codes := make([]string, 0, len(list.Errors))
	for _, bundle := range list.Errors {
		codes = append(codes, bundle.Code)
	}
	return codes
}
