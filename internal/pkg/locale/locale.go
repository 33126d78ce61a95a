// Package locale 요청의 언어 정보(lang 파라미터, Accept-Language 헤더)를 카탈로그 언어로 변환합니다.
package locale

import (
	"strings"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"golang.org/x/text/language"
)

// supported matcher의 후보 순서와 languages의 순서는 같아야 합니다.
var (
	supported = []language.Tag{language.Korean, language.English}
	languages = []catalog.Language{catalog.Korean, catalog.English}

	matcher = language.NewMatcher(supported)
)

// Parse BCP 47 언어 태그를 카탈로그 언어로 변환합니다.
// "ko-KR"은 ko로, "en-US"는 en으로 해석되며 지원하지 않는 언어는 false를 반환합니다.
func Parse(s string) (catalog.Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}

	return match(tag)
}

func match(tags ...language.Tag) (catalog.Language, bool) {
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(languages) {
		return "", false
	}
	return languages[idx], true
}

// Negotiator 명시적 언어, Accept-Language, 기본 언어 순으로 응답 언어를 결정합니다.
type Negotiator struct {
	fallback catalog.Language
}

// NewNegotiator 기본 언어가 fallback인 Negotiator를 생성합니다.
// fallback이 지원하지 않는 언어이면 한국어를 사용합니다.
func NewNegotiator(fallback catalog.Language) Negotiator {
	if !fallback.Valid() {
		fallback = catalog.Korean
	}
	return Negotiator{fallback: fallback}
}

// Fallback 기본 언어를 반환합니다.
func (n Negotiator) Fallback() catalog.Language {
	return n.fallback
}

// Negotiate 응답 언어를 결정합니다. 결과는 항상 지원하는 언어입니다.
func (n Negotiator) Negotiate(explicit, acceptLanguage string) catalog.Language {
	if lang, ok := Parse(explicit); ok {
		return lang
	}

	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if lang, ok := match(tags...); ok {
				return lang
			}
		}
	}

	return n.fallback
}
