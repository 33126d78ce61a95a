// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// Mask 토큰이나 비밀번호처럼 민감한 문자열을 로그에 남길 수 있도록 마스킹합니다.
//
//	""                      -> ""
//	"abc"                   -> "***"
//	"abcdefgh"              -> "abcd***"
//	"123456789:ABCDEFGHIJK" -> "1234***HIJK"
func Mask(s string) string {
	if s == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(s) <= 3 {
		return "***"
	}

	if len(s) <= 12 {
		return s[:4] + "***"
	}

	return s[:4] + "***" + s[len(s)-4:]
}

// Truncate s가 max 글자(rune)를 초과하면 잘라내고 말줄임표(...)를 붙입니다.
// 멀티바이트 문자(한글 등)가 중간에 잘리지 않도록 rune 단위로 계산합니다.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	const ellipsis = "..."
	if max <= len(ellipsis) {
		return string([]rune(s)[:max])
	}

	return string([]rune(s)[:max-len(ellipsis)]) + ellipsis
}

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백(줄바꿈, 탭 포함)을 하나의 공백으로 합칩니다.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
