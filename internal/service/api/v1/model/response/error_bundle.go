// Package response v1 API의 응답 모델을 정의합니다.
package response

// ErrorBundle 하나의 에러 코드를 특정 언어로 해석한 결과입니다.
type ErrorBundle struct {
	// 요청한 에러 코드 (대체 응답이어도 요청한 코드를 그대로 돌려줍니다)
	Code string `json:"code" example:"SESSION_EXPIRED"`
	// 에러 코드가 속한 카테고리 (대체 응답이면 대체 항목의 카테고리)
	Category string `json:"category" example:"auth"`
	// 응답 언어: ko, en
	Language string `json:"language" example:"ko"`
	// 등록되지 않은 코드여서 대체(UNKNOWN_ERROR) 항목으로 응답했는지 여부
	Fallback bool `json:"fallback" example:"false"`
	// 사용자에게 보여줄 메시지
	Message string `json:"message" example:"세션이 만료되었습니다"`
	// 해결 방법 제안
	Suggestion *string `json:"suggestion,omitempty" example:"다시 로그인해주세요"`
	// 사용자가 누를 수 있는 동작 버튼 문구
	Action *string `json:"action,omitempty" example:"로그인"`
}

// ErrorList 여러 에러 코드의 해석 결과 목록입니다.
type ErrorList struct {
	// 응답 언어: ko, en
	Language string `json:"language" example:"en"`
	// 필터로 사용한 카테고리 (전체 조회면 생략)
	Category string `json:"category,omitempty" example:"auth"`
	// 항목 수
	Count int `json:"count" example:"2"`
	// 코드 오름차순으로 정렬된 항목
	Errors []ErrorBundle `json:"errors"`
}
