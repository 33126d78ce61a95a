package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
//   - *echo.HTTPError: 상태 코드와 메시지를 그대로 사용
//   - *apperrors.AppError: ErrorType.HTTPStatus()로 상태 코드를 결정하고, 4xx이면 에러 메시지를 노출
//   - 그 외: 500과 일반 메시지
//
// 5xx 응답의 내부 원인은 로그에만 남기고 클라이언트에는 노출하지 않습니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := classify(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := he.Code
		message := http.StatusText(code)

		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		// 라우트가 없을 때 Echo가 반환하는 "Not Found"를 통일된 메시지로 바꿉니다.
		if code == http.StatusNotFound && he.Message == echo.ErrNotFound.Message {
			message = constants.ErrMsgNotFound
		}
		if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
			message = constants.ErrMsgInternalServer
		}
		return code, message
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := appErr.Type().HTTPStatus()
		if code >= http.StatusInternalServerError {
			return code, constants.ErrMsgInternalServer
		}
		return code, appErr.Message()
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
