package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest          = "잘못된 요청입니다"
	ErrMsgUnsupportedLanguage = "지원하지 않는 언어입니다 (lang: %s, 지원: ko, en)"
	ErrMsgInvalidErrorCode    = "에러 코드 형식이 올바르지 않습니다 (code: %s)"

	// 404 Not Found
	ErrMsgNotFound         = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgNotFoundCategory = "등록되지 않은 카테고리입니다 (category: %s)"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"
)
