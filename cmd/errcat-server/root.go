package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/darkkaiser/errcat-server/internal/pkg/locale"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/spf13/cobra"
)

// rootOptions 모든 하위 명령이 공유하는 전역 플래그입니다.
type rootOptions struct {
	configFile string
}

// newRootCmd 루트 명령을 생성합니다. 하위 명령 없이 실행하면 serve와 같습니다.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "에러 코드를 한국어/영어 안내 문구로 변환하는 에러 카탈로그 서버",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", config.DefaultFilename, "설정 파일 경로")

	cmd.AddCommand(
		newServeCmd(opts),
		newLookupCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig 설정을 로드합니다.
// --config를 지정하지 않았고 기본 설정 파일도 없으면 기본값과 환경 변수만 사용합니다.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.AppConfig, error) {
	filename := opts.configFile
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			filename = ""
		}
	}

	return config.LoadWithFile(filename)
}

// buildCatalog 내장 카테고리와 (설정된 경우) 오버라이드 파일로 카탈로그를 구성합니다.
// 다른 카테고리의 항목을 덮어쓴 코드는 경고로 기록합니다.
func buildCatalog(appConfig *config.AppConfig) (*catalog.Catalog, error) {
	categories := catalog.Builtin()

	if path := appConfig.Catalog.OverridesFile; path != "" {
		overrides, err := catalog.LoadCategoryFile(path)
		if err != nil {
			return nil, err
		}
		categories = append(categories, overrides)
	}

	cat, err := catalog.New(categories...)
	if err != nil {
		return nil, err
	}

	for _, o := range cat.Overrides() {
		applog.WithComponentAndFields("main", applog.Fields{
			"code":     o.Code,
			"previous": o.Previous,
			"winner":   o.Winner,
		}).Warn("다른 카테고리의 에러 코드를 덮어썼습니다")
	}

	return cat, nil
}

// parseLanguage --lang 플래그 값을 카탈로그 언어로 변환합니다.
// 빈 값이면 설정의 기본 언어를 사용합니다.
func parseLanguage(value string, appConfig *config.AppConfig) (catalog.Language, error) {
	if value == "" {
		return locale.NewNegotiator(catalog.Language(appConfig.Catalog.DefaultLanguage)).Fallback(), nil
	}

	lang, ok := locale.Parse(value)
	if !ok {
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 언어입니다 (lang: %s, 지원: ko, en)", value)
	}
	return lang, nil
}
