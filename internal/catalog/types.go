package catalog

// Code 외부 서브시스템이 보고하는 에러 코드입니다. (예: "SESSION_EXPIRED")
// 조회 시점에는 어떤 문자열이든 허용하며, 대소문자를 구분하여 정확히 일치해야 합니다.
type Code string

// Language 카탈로그가 지원하는 언어입니다.
type Language string

const (
	Korean  Language = "ko"
	English Language = "en"
)

// Languages 지원하는 모든 언어를 반환합니다.
func Languages() []Language {
	return []Language{Korean, English}
}

// Valid 지원하는 언어인지 여부를 반환합니다.
func (l Language) Valid() bool {
	return l == Korean || l == English
}

func (l Language) String() string {
	return string(l)
}

// LocalizedText 언어별 문자열입니다.
type LocalizedText struct {
	Ko string `json:"ko" yaml:"ko"`
	En string `json:"en" yaml:"en"`
}

// In 주어진 언어의 문자열을 반환합니다.
// 지원하지 않는 언어이거나 값이 비어 있으면 빈 문자열을 반환합니다.
func (t LocalizedText) In(lang Language) string {
	switch lang {
	case Korean:
		return t.Ko
	case English:
		return t.En
	default:
		return ""
	}
}

// complete 모든 지원 언어에 대해 값이 채워져 있는지 여부를 반환합니다.
func (t LocalizedText) complete() bool {
	for _, lang := range Languages() {
		if t.In(lang) == "" {
			return false
		}
	}
	return true
}

// Entry 하나의 에러 코드에 대한 사용자 안내 문구입니다.
// Suggestion과 Action은 선택 항목입니다.
type Entry struct {
	Message    LocalizedText  `json:"message" yaml:"message"`
	Suggestion *LocalizedText `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Action     *LocalizedText `json:"action,omitempty" yaml:"action,omitempty"`
}

// clone Suggestion과 Action이 원본과 메모리를 공유하지 않는 사본을 반환합니다.
func (e Entry) clone() Entry {
	if e.Suggestion != nil {
		s := *e.Suggestion
		e.Suggestion = &s
	}
	if e.Action != nil {
		a := *e.Action
		e.Action = &a
	}
	return e
}

// Category 관련 에러 코드를 묶은 작성 단위입니다.
// 조회 시점에는 모든 카테고리가 하나의 평면 네임스페이스로 합쳐집니다.
type Category struct {
	Name    string         `json:"name" yaml:"name"`
	Entries map[Code]Entry `json:"entries" yaml:"entries"`
}

// Override 카탈로그 구성 중 같은 코드가 나중 카테고리에 의해 덮어써진 기록입니다.
type Override struct {
	Code     Code
	Previous string // 덮어써진 카테고리 이름
	Winner   string // 최종적으로 남은 카테고리 이름
}

// Resolved 특정 언어로 해석된 안내 문구입니다.
//
// 코드 필드가 없으므로 존재하지 않는 코드의 결과는 FallbackCode를 해석한 결과와 정확히 같습니다.
type Resolved struct {
	Message    string  `json:"message" yaml:"message"`
	Suggestion *string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Action     *string `json:"action,omitempty" yaml:"action,omitempty"`
}

// Record 내보내기용으로 코드와 소속 카테고리를 함께 담은 항목입니다.
type Record struct {
	Code     Code   `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
	Entry    Entry  `json:"entry" yaml:"entry"`
}
