package main

import (
	"encoding/json"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/spf13/cobra"
)

// lookupResult lookup 명령의 출력 형식입니다.
type lookupResult struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Language string `json:"language"`
	Fallback bool   `json:"fallback"`
	catalog.Resolved
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "lookup CODE",
		Short:   "에러 코드 하나를 해석하여 JSON으로 출력합니다",
		Example: "  errcat-server lookup SESSION_EXPIRED --lang en",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			language, err := parseLanguage(lang, appConfig)
			if err != nil {
				return err
			}

			cat, err := buildCatalog(appConfig)
			if err != nil {
				return err
			}

			code := catalog.Code(args[0])
			result := lookupResult{
				Code:     string(code),
				Language: language.String(),
				Fallback: !cat.Has(code),
				Resolved: cat.Resolve(code, language),
			}

			origin := code
			if result.Fallback {
				origin = catalog.FallbackCode
			}
			result.Category, _ = cat.CategoryOf(origin)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "출력 언어 (ko, en). 생략하면 설정의 기본 언어")

	return cmd
}
