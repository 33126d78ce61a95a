package strutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "***"},
		{"abc", "***"},
		{"abcd", "abcd***"},
		{"abcdefghijkl", "abcd***"},
		{"abcdefghijklm", "abcd***jklm"},
		{"123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11", "1234***ew11"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Mask(tt.input), "input: %q", tt.input)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"짧은 문자열", "hello", 10, "hello"},
		{"정확히 최대 길이", "hello", 5, "hello"},
		{"영문 자르기", "hello world", 8, "hello..."},
		{"한글 자르기", "세션이 만료되었습니다", 6, "세션이..."},
		{"최대 길이가 말줄임표보다 짧음", "abcdef", 2, "ab"},
		{"0 이하", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Truncate(tt.input, tt.max)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}

	long := strings.Repeat("가", 5000)
	assert.Equal(t, 4000, utf8.RuneCountInString(Truncate(long, 4000)))
}

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", NormalizeSpaces("  a \t b\n\n c  "))
	assert.Equal(t, "", NormalizeSpaces(" \n "))
}
