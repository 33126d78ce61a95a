// Package catalog 에러 코드를 사용자에게 보여줄 한국어/영어 안내 문구로 변환합니다.
//
// 카탈로그는 시작 시점에 카테고리 목록으로부터 한 번 구성되며 이후에는 변경되지 않습니다.
// 구성 시 항목을 복사해 보관하고 조회 결과도 사본으로 돌려주므로, 호출자가 값을 수정해도 카탈로그에는 영향이 없습니다.
// 따라서 여러 고루틴에서 잠금 없이 공유할 수 있습니다.
//
//	cat, err := catalog.New(catalog.Builtin()...)
//	r := cat.Resolve("SESSION_EXPIRED", catalog.English)
//	// r.Message == "Session expired"
//
// 존재하지 않는 코드는 항상 FallbackCode 항목으로 해석되며, 조회는 실패하지 않습니다.
package catalog

import (
	"slices"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/iancoleman/strcase"
)

// FallbackCode 등록되지 않은 코드를 조회했을 때 사용되는 항목의 코드입니다.
const FallbackCode Code = "UNKNOWN_ERROR"

// Catalog 모든 카테고리를 병합한 읽기 전용 레지스트리입니다.
type Catalog struct {
	entries    map[Code]Entry
	origins    map[Code]string
	categories []string
	overrides  []Override
	fallback   Entry
}

// New 카테고리를 왼쪽에서 오른쪽 순서로 병합하여 카탈로그를 구성합니다.
//
// 같은 코드가 여러 카테고리에 존재하면 나중에 병합된 카테고리의 항목이 남으며(last-write-wins),
// 덮어쓴 내역은 Overrides()로 확인할 수 있습니다.
//
// FallbackCode 항목이 없거나 모든 언어에 대해 문구가 채워져 있지 않으면 Internal 에러를 반환합니다.
// 그 밖의 불완전한 항목은 허용되며, 조회 시 빈 문구로 해석됩니다.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[Code]Entry),
		origins: make(map[Code]string),
	}

	for _, category := range categories {
		if !slices.Contains(c.categories, category.Name) {
			c.categories = append(c.categories, category.Name)
		}

		// 같은 카테고리 안에서의 순서는 의미가 없으므로 Override 기록 순서를 고정하기 위해 정렬합니다.
		codes := make([]Code, 0, len(category.Entries))
		for code := range category.Entries {
			codes = append(codes, code)
		}
		slices.Sort(codes)

		for _, code := range codes {
			if prev, exists := c.origins[code]; exists {
				c.overrides = append(c.overrides, Override{Code: code, Previous: prev, Winner: category.Name})
			}
			c.entries[code] = category.Entries[code].clone()
			c.origins[code] = category.Name
		}
	}

	fallback, ok := c.entries[FallbackCode]
	if !ok {
		return nil, apperrors.Newf(apperrors.Internal, "대체 항목(%s)이 카탈로그에 존재하지 않습니다", FallbackCode)
	}
	if err := validateFallback(fallback); err != nil {
		return nil, err
	}
	c.fallback = fallback

	return c, nil
}

func validateFallback(e Entry) error {
	if !e.Message.complete() {
		return apperrors.Newf(apperrors.Internal, "대체 항목(%s)의 message가 모든 언어에 대해 정의되어 있지 않습니다", FallbackCode)
	}
	if e.Suggestion != nil && !e.Suggestion.complete() {
		return apperrors.Newf(apperrors.Internal, "대체 항목(%s)의 suggestion이 모든 언어에 대해 정의되어 있지 않습니다", FallbackCode)
	}
	if e.Action != nil && !e.Action.complete() {
		return apperrors.Newf(apperrors.Internal, "대체 항목(%s)의 action이 모든 언어에 대해 정의되어 있지 않습니다", FallbackCode)
	}
	return nil
}

// Resolve 코드를 주어진 언어의 안내 문구로 해석합니다.
// 코드는 정확히 일치해야 하며, 없으면 FallbackCode 항목을 해석합니다.
func (c *Catalog) Resolve(code Code, lang Language) Resolved {
	entry, ok := c.entries[code]
	if !ok {
		entry = c.fallback
	}
	return resolveEntry(entry, lang)
}

func resolveEntry(e Entry, lang Language) Resolved {
	r := Resolved{Message: e.Message.In(lang)}
	if e.Suggestion != nil {
		s := e.Suggestion.In(lang)
		r.Suggestion = &s
	}
	if e.Action != nil {
		a := e.Action.In(lang)
		r.Action = &a
	}
	return r
}

// MessageText Resolve(code, lang).Message와 같습니다.
func (c *Catalog) MessageText(code Code, lang Language) string {
	return c.Resolve(code, lang).Message
}

// SuggestionText 해석된 suggestion을 반환합니다. 항목에 suggestion이 없으면 false를 반환합니다.
func (c *Catalog) SuggestionText(code Code, lang Language) (string, bool) {
	r := c.Resolve(code, lang)
	if r.Suggestion == nil {
		return "", false
	}
	return *r.Suggestion, true
}

// ActionText 해석된 action을 반환합니다. 항목에 action이 없으면 false를 반환합니다.
func (c *Catalog) ActionText(code Code, lang Language) (string, bool) {
	r := c.Resolve(code, lang)
	if r.Action == nil {
		return "", false
	}
	return *r.Action, true
}

// Lookup 코드에 등록된 항목의 사본을 반환합니다. 대체 항목으로 바꾸지 않습니다.
func (c *Catalog) Lookup(code Code) (Entry, bool) {
	e, ok := c.entries[code]
	return e.clone(), ok
}

// Has 코드가 등록되어 있는지 여부를 반환합니다.
func (c *Catalog) Has(code Code) bool {
	_, ok := c.entries[code]
	return ok
}

// Len 등록된 코드의 개수를 반환합니다.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Codes 등록된 모든 코드를 정렬하여 반환합니다.
func (c *Catalog) Codes() []Code {
	codes := make([]Code, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// CategoryOf 코드가 최종적으로 속한 카테고리 이름을 반환합니다.
func (c *Catalog) CategoryOf(code Code) (string, bool) {
	name, ok := c.origins[code]
	return name, ok
}

// Categories 병합된 순서대로 카테고리 이름을 반환합니다.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// HasCategory 카테고리 이름이 존재하는지 여부를 반환합니다. 이름은 snake_case로 정규화하여 비교합니다.
func (c *Catalog) HasCategory(name string) bool {
	want := normalizeCategory(name)
	for _, category := range c.categories {
		if normalizeCategory(category) == want {
			return true
		}
	}
	return false
}

// CodesIn 카테고리에 최종적으로 남은 코드를 정렬하여 반환합니다.
// 이름은 snake_case로 정규화하여 비교하므로 "Network"와 "network"는 같은 카테고리입니다.
func (c *Catalog) CodesIn(category string) []Code {
	want := normalizeCategory(category)

	var codes []Code
	for code, origin := range c.origins {
		if normalizeCategory(origin) == want {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}

// Overrides 구성 중 덮어써진 코드 목록을 반환합니다.
func (c *Catalog) Overrides() []Override {
	return slices.Clone(c.overrides)
}

// Records 모든 항목의 사본을 코드 순으로 정렬하여 반환합니다.
func (c *Catalog) Records() []Record {
	codes := c.Codes()
	records := make([]Record, 0, len(codes))
	for _, code := range codes {
		records = append(records, Record{Code: code, Category: c.origins[code], Entry: c.entries[code].clone()})
	}
	return records
}

func normalizeCategory(name string) string {
	return strcase.ToSnake(name)
}
