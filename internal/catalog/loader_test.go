package catalog

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCategoryFile(t *testing.T) {
	t.Parallel()

	t.Run("성공: YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "overrides.yaml", `
name: overrides
entries:
  SESSION_EXPIRED:
    message: {ko: "로그인 시간이 지났습니다", en: "Your session has ended"}
    action: {ko: "로그인", en: "Log In"}
  BETA_ONLY:
    message: {ko: "베타 기능입니다", en: "Beta feature"}
`)

		category, err := LoadCategoryFile(path)
		require.NoError(t, err)
		assert.Equal(t, "overrides", category.Name)
		require.Len(t, category.Entries, 2)

		e := category.Entries["SESSION_EXPIRED"]
		assert.Equal(t, "Your session has ended", e.Message.En)
		assert.Nil(t, e.Suggestion)
		require.NotNil(t, e.Action)
		assert.Equal(t, "로그인", e.Action.Ko)
	})

	t.Run("성공: JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "overrides.json", `{
  "name": "overrides",
  "entries": {"PAYMENT_FAILED": {"message": {"ko": "결제 실패", "en": "Payment failed"}}}
}`)

		category, err := LoadCategoryFile(path)
		require.NoError(t, err)
		assert.Equal(t, "결제 실패", category.Entries["PAYMENT_FAILED"].Message.Ko)
	})

	t.Run("성공: 항목이 없는 카테고리", func(t *testing.T) {
		t.Parallel()

		category, err := LoadCategoryFile(writeFile(t, "empty.yaml", "name: empty\n"))
		require.NoError(t, err)
		assert.NotNil(t, category.Entries)
		assert.Empty(t, category.Entries)
	})

	t.Run("실패: 파일 없음", func(t *testing.T) {
		t.Parallel()

		_, err := LoadCategoryFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})

	parseFailures := []struct {
		name    string
		content string
	}{
		{"빈 문서", ""},
		{"name 누락", "entries: {}\n"},
		{"알 수 없는 필드", "name: x\ncolor: red\n"},
		{"잘못된 구조", "name: x\nentries: [1, 2]\n"},
		{"빈 코드", "name: x\nentries:\n  \"\": {message: {ko: a, en: b}}\n"},
	}
	for _, tt := range parseFailures {
		t.Run("실패: "+tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadCategoryFile(writeFile(t, "bad.yaml", tt.content))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
		})
	}
}

func TestLoadCategoryFile_AppendedAfterBuiltin(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "overrides.yaml", `
name: overrides
entries:
  SESSION_EXPIRED:
    message: {ko: "다시 로그인하세요", en: "Sign in again"}
`)
	overrides, err := LoadCategoryFile(path)
	require.NoError(t, err)

	c, err := New(append(Builtin(), overrides)...)
	require.NoError(t, err)

	assert.Equal(t, "Sign in again", c.MessageText("SESSION_EXPIRED", English))
	_, ok := c.SuggestionText("SESSION_EXPIRED", English)
	assert.False(t, ok, "덮어쓴 항목은 통째로 교체됩니다")
	assert.Equal(t, []Override{{Code: "SESSION_EXPIRED", Previous: CategoryAuth, Winner: "overrides"}}, c.Overrides())
}
