package constants

import "time"

// 보안 및 리소스 보호 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기
	// 조회 전용 API이므로 작게 제한합니다.
	DefaultMaxBodySize = "16K"

	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultReadTimeout 요청 전체(헤더 + 본문) 읽기 제한
	DefaultReadTimeout = 15 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한. 요청 타임아웃보다 길어야 503 응답을 보낼 수 있습니다.
	DefaultWriteTimeout = 35 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한
	DefaultIdleTimeout = 120 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
