package constants

// URL 경로 및 쿼리 파라미터 키 상수입니다.
const (
	// ParamCode 에러 코드 경로 파라미터
	ParamCode = "code"

	// QueryLang 응답 언어 쿼리 파라미터 (ko, en 또는 BCP 47 태그)
	QueryLang = "lang"

	// QueryCategory 카테고리 필터 쿼리 파라미터
	QueryCategory = "category"
)

// HTTP 헤더 키 상수입니다.
const (
	// RetryAfter RFC 7231 Retry-After 헤더
	RetryAfter = "Retry-After"

	// AcceptLanguage 클라이언트가 선호하는 언어 목록 헤더
	AcceptLanguage = "Accept-Language"

	// ContentLanguage 응답 본문의 언어를 나타내는 헤더
	ContentLanguage = "Content-Language"
)
