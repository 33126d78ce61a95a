package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/darkkaiser/errcat-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 커스텀 태그(cors_origin, cron_spec, telegram_bot_token)가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 Go 필드명 대신 설정 파일의 키 이름이 나타나도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"cors_origin":        validateCORSOrigin,
		"cron_spec":          validateCronSpec,
		"telegram_bot_token": validateTelegramBotToken,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return validation.ValidateCronExpression(fl.Field().String()) == nil
}

func validateTelegramBotToken(fl validator.FieldLevel) bool {
	return telegramBotTokenRegex.MatchString(fl.Field().String())
}

// checkStruct 구조체를 검증하고, 첫 번째 검증 실패를 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return apperrors.New(apperrors.InvalidInput, describe(validationErrors[0]))
}

// describe FieldError를 "api.ws.listen_port" 같은 설정 키 경로를 포함한 한국어 메시지로 변환합니다.
func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if idx := strings.Index(key, "."); idx != -1 {
		key = key[idx+1:] // 최상위 구조체 이름(AppConfig) 제거
	}

	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Sprintf("%s 설정은 필수입니다", key)
	case "min", "max", "gt", "gte", "lt", "lte":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s 목록이 비어있습니다", key)
		}
		return fmt.Sprintf("%s 설정 값이 허용 범위를 벗어났습니다: '%v' (조건: %s=%s)", key, fe.Value(), fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s 설정은 다음 중 하나여야 합니다: %s (입력값: '%v')", key, fe.Param(), fe.Value())
	case "url":
		return fmt.Sprintf("%s 설정은 올바른 URL이어야 합니다: '%v'", key, fe.Value())
	case "file":
		return fmt.Sprintf("%s에 지정된 파일을 찾을 수 없습니다: '%v'", key, fe.Value())
	case "cors_origin":
		return fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "cron_spec":
		return fmt.Sprintf("%s의 Cron 표현식이 올바르지 않습니다: '%v' (예: @every 30s, 0 */5 * * * *)", key, fe.Value())
	case "telegram_bot_token":
		return fmt.Sprintf("%s 형식이 올바르지 않습니다 (형식: 숫자ID:비밀키)", key)
	default:
		return fmt.Sprintf("%s의 설정이 올바르지 않습니다 (조건: %s)", key, fe.Tag())
	}
}
