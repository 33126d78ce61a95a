package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Test Helpers
// =============================================================================

// execute 루트 명령을 args로 실행하고 표준 출력을 반환합니다.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeOverrideConfig SESSION_EXPIRED를 덮어쓰는 오버라이드 파일과 이를 가리키는 설정 파일을 만듭니다.
func writeOverrideConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	overrides := filepath.Join(dir, "overrides.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte(`name: product
entries:
  SESSION_EXPIRED:
    message: {ko: "로그인 시간이 지났습니다", en: "Your login has timed out"}
  EDITOR_LOCKED:
    message: {ko: "다른 사용자가 편집 중입니다", en: "Someone else is editing"}
    action: {ko: "새로고침", en: "Refresh"}
`), 0644))

	cfg := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(cfg, []byte(`{"catalog": {"default_language": "en", "overrides_file": "`+filepath.ToSlash(overrides)+`"}}`), 0644))

	return cfg
}

// =============================================================================
// Metadata
// =============================================================================

func TestRootCmd_Metadata(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	assert.Equal(t, "errcat-server", cmd.Use)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, config.DefaultFilename, flag.DefValue)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "lookup", "export", "version"})
}

// =============================================================================
// lookup
// =============================================================================

func TestLookupCmd(t *testing.T) {
	t.Parallel()

	suggestion := "Please log in again"
	action := "Log In Again"

	tests := []struct {
		name string
		args []string
		want lookupResult
	}{
		{
			name: "영어",
			args: []string{"lookup", "SESSION_EXPIRED", "--lang", "en"},
			want: lookupResult{
				Code:     "SESSION_EXPIRED",
				Category: catalog.CategoryAuth,
				Language: "en",
				Resolved: catalog.Resolved{Message: "Session expired", Suggestion: &suggestion, Action: &action},
			},
		},
		{
			name: "기본 언어는 한국어",
			args: []string{"lookup", "SESSION_EXPIRED"},
			want: lookupResult{
				Code:     "SESSION_EXPIRED",
				Category: catalog.CategoryAuth,
				Language: "ko",
				Resolved: catalog.Resolved{
					Message:    "세션이 만료되었습니다",
					Suggestion: ptr("다시 로그인해주세요"),
					Action:     ptr("다시 로그인"),
				},
			},
		},
		{
			name: "등록되지 않은 코드",
			args: []string{"lookup", "NOPE", "-l", "en-GB"},
			want: lookupResult{
				Code:     "NOPE",
				Category: catalog.CategoryGeneral,
				Language: "en",
				Fallback: true,
				Resolved: catalog.Resolved{
					Message:    "An unknown error occurred",
					Suggestion: ptr("Please refresh the page or try again later"),
					Action:     ptr("Refresh"),
				},
			},
		},
	}

	unknown := catalog.Resolved{
		Message:    "An unknown error occurred",
		Suggestion: ptr("Please refresh the page or try again later"),
		Action:     ptr("Refresh"),
	}
	for _, code := range []string{" SESSION_EXPIRED", "SESSION_EXPIRED ", "session_expired"} {
		tests = append(tests, struct {
			name string
			args []string
			want lookupResult
		}{
			name: "정확히 일치하지 않는 코드 " + strconv.Quote(code),
			args: []string{"lookup", code, "--lang", "en"},
			want: lookupResult{
				Code:     code,
				Category: catalog.CategoryGeneral,
				Language: "en",
				Fallback: true,
				Resolved: unknown,
			},
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var got lookupResult
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lookup 결과 불일치 (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupCmd_Errors(t *testing.T) {
	t.Parallel()

	t.Run("지원하지 않는 언어", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "lookup", "SESSION_EXPIRED", "--lang", "de")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("코드 누락", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "lookup")
		assert.Error(t, err)
	})

	t.Run("존재하지 않는 설정 파일", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "lookup", "SESSION_EXPIRED", "--config", filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
	})
}

func TestLookupCmd_Overrides(t *testing.T) {
	t.Parallel()

	cfg := writeOverrideConfig(t)

	out, err := execute(t, "lookup", "SESSION_EXPIRED", "--config", cfg)
	require.NoError(t, err)

	var got lookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "en", got.Language, "설정의 기본 언어를 사용해야 합니다")
	assert.Equal(t, "product", got.Category)
	assert.Equal(t, "Your login has timed out", got.Message)
	assert.Nil(t, got.Suggestion, "항목 전체가 교체되므로 제안 문구가 없어야 합니다")
}

// =============================================================================
// export
// =============================================================================

func TestExportCmd(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(catalog.Builtin()...)
	require.NoError(t, err)

	t.Run("YAML 전체", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "export")
		require.NoError(t, err)

		var records []catalog.Record
		require.NoError(t, yaml.Unmarshal([]byte(out), &records))
		if diff := cmp.Diff(cat.Records(), records); diff != "" {
			t.Errorf("export 결과 불일치 (-want +got):\n%s", diff)
		}
	})

	t.Run("JSON 언어 지정", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "export", "--format", "json", "--lang", "en")
		require.NoError(t, err)

		var texts []exportedText
		require.NoError(t, json.Unmarshal([]byte(out), &texts))
		require.Len(t, texts, cat.Len())

		for _, text := range texts {
			want := cat.Resolve(catalog.Code(text.Code), catalog.English)
			assert.Equal(t, want.Message, text.Message, "code: %s", text.Code)
		}
	})

	t.Run("YAML 언어 지정은 평면 구조", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "export", "-l", "ko")
		require.NoError(t, err)
		assert.Contains(t, out, "code: SESSION_EXPIRED")
		assert.Contains(t, out, "message: 세션이 만료되었습니다")
		assert.NotContains(t, out, "resolved:")
	})

	t.Run("오버라이드 포함", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "export", "--format", "json", "--config", writeOverrideConfig(t))
		require.NoError(t, err)

		var records []catalog.Record
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		assert.Len(t, records, cat.Len()+1, "새 코드 하나가 추가되어야 합니다")
	})

	t.Run("지원하지 않는 형식", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "export", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format: xml")
	})
}

// =============================================================================
// version
// =============================================================================

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}

func ptr(s string) *string { return &s }

func TestRunEnvironment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "development", runEnvironment(true))
	assert.Equal(t, "production", runEnvironment(false))
}
