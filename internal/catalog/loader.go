package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadCategoryFile YAML(또는 JSON) 파일에서 카테고리 하나를 읽습니다.
//
//	name: overrides
//	entries:
//	  SESSION_EXPIRED:
//	    message:    {ko: "...", en: "..."}
//	    suggestion: {ko: "...", en: "..."}
//	    action:     {ko: "...", en: "..."}
//
// 파일을 읽지 못하면 System, 내용을 해석하지 못하면 ParsingFailed 에러를 반환합니다.
func LoadCategoryFile(path string) (Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Category{}, apperrors.Wrapf(err, apperrors.System, "카테고리 파일(%s)을 읽을 수 없습니다", path)
	}

	category, err := parseCategory(data)
	if err != nil {
		return Category{}, apperrors.Wrapf(err, apperrors.ParsingFailed, "카테고리 파일(%s)의 형식이 올바르지 않습니다", path)
	}

	return category, nil
}

func parseCategory(data []byte) (Category, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var category Category
	if err := dec.Decode(&category); err != nil {
		if errors.Is(err, io.EOF) {
			return Category{}, errors.New("빈 문서입니다")
		}
		return Category{}, err
	}

	if category.Name == "" {
		return Category{}, errors.New("name 항목이 필요합니다")
	}
	for code := range category.Entries {
		if code == "" {
			return Category{}, errors.New("빈 코드는 사용할 수 없습니다")
		}
	}
	if category.Entries == nil {
		category.Entries = map[Code]Entry{}
	}

	return category, nil
}
