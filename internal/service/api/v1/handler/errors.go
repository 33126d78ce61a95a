package handler

import (
	"fmt"

	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/httputil"
)

// NewErrUnsupportedLanguage lang 파라미터가 지원하지 않는 언어일 때 반환하는 400 에러를 생성합니다.
func NewErrUnsupportedLanguage(lang string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgUnsupportedLanguage, lang))
}

// NewErrInvalidErrorCode 에러 코드가 비어 있을 때 반환하는 400 에러를 생성합니다.
func NewErrInvalidErrorCode(code string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgInvalidErrorCode, code))
}

// NewErrCategoryNotFound 등록되지 않은 카테고리를 요청했을 때 반환하는 404 에러를 생성합니다.
func NewErrCategoryNotFound(category string) error {
	return httputil.NewNotFoundError(fmt.Sprintf(constants.ErrMsgNotFoundCategory, category))
}
