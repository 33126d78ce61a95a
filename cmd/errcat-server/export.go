package main

import (
	"encoding/json"
	"io"

	"github.com/darkkaiser/errcat-server/internal/catalog"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// exportedText --lang을 지정했을 때 한 언어로 해석된 항목입니다.
type exportedText struct {
	Code     string `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
	catalog.Resolved `yaml:",inline"`
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "병합된 카탈로그 전체를 YAML 또는 JSON으로 출력합니다",
		Long: `병합된 카탈로그 전체를 코드 순으로 출력합니다.

--lang을 생략하면 모든 언어의 원문을, 지정하면 해당 언어로 해석된 문구만 출력합니다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatYAML && format != formatJSON {
				return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 출력 형식입니다 (format: %s, 지원: yaml, json)", format)
			}

			appConfig, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			cat, err := buildCatalog(appConfig)
			if err != nil {
				return err
			}

			if lang == "" {
				return encode(cmd.OutOrStdout(), format, cat.Records())
			}

			language, err := parseLanguage(lang, appConfig)
			if err != nil {
				return err
			}

			records := cat.Records()
			texts := make([]exportedText, 0, len(records))
			for _, r := range records {
				texts = append(texts, exportedText{
					Code:     string(r.Code),
					Category: r.Category,
					Resolved: cat.Resolve(r.Code, language),
				})
			}
			return encode(cmd.OutOrStdout(), format, texts)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "출력 형식 (yaml, json)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "출력 언어 (ko, en). 생략하면 모든 언어")

	return cmd
}

func encode(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
