// Package log logrus 기반의 애플리케이션 전역 로깅 헬퍼를 제공합니다.
//
// 모든 로그는 component 필드를 포함하는 것을 원칙으로 합니다.
//
//	applog.WithComponentAndFields("catalog", applog.Fields{"code": code}).Warn("...")
package log

import (
	"github.com/sirupsen/logrus"
)

// WithComponent component 필드가 설정된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// fields에 component 키가 있더라도 인자로 전달된 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// WithFields 주어진 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 Logger를 반환합니다.
// Echo 로거 어댑터처럼 *Logger를 직접 요구하는 곳에서 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode debug가 true이면 Trace, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// IsDebugEnabled 현재 Debug 레벨 이하의 로그가 기록되는지 여부를 반환합니다.
func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(DebugLevel)
}
