// Package alert 운영자에게 서버 상태 변화를 알리는 Notifier를 제공합니다.
package alert

import (
	"context"
)

// component 알림 로깅용 컴포넌트 이름
const component = "service.alert"

// Notifier 운영자 알림 발송 인터페이스입니다.
type Notifier interface {
	// Notify message를 발송합니다. ctx가 취소되면 발송을 중단하고 ctx.Err()를 반환합니다.
	Notify(ctx context.Context, message string) error
}

// Nop 아무 것도 발송하지 않는 Notifier입니다. 알림 채널이 설정되지 않았을 때 사용합니다.
type Nop struct{}

// Notify 항상 nil을 반환합니다.
func (Nop) Notify(context.Context, string) error {
	return nil
}
