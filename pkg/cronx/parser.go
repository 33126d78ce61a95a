// Package cronx 애플리케이션 전반에서 공통으로 사용하는 Cron 표현식 규칙을 제공합니다.
package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함한 6필드 형식과 Descriptor(@every, @daily 등)를 지원하는 파서를 반환합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
//	"0 */5 * * * *" 매 5분 0초
//	"@every 30s"    30초마다
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한지 검사합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}

// New StandardParser를 사용하는 cron 스케줄러를 생성합니다.
func New(opts ...cron.Option) *cron.Cron {
	return cron.New(append([]cron.Option{cron.WithParser(StandardParser())}, opts...)...)
}
