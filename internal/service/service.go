// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 생명주기 규약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 고루틴으로 실행되는 서비스의 생명주기 인터페이스입니다.
//
// Start는 즉시 반환되어야 하며, 서비스는 serviceStopCtx가 취소되면 종료 절차를 수행한 뒤
// serviceStopWG.Done()을 정확히 한 번 호출해야 합니다. 호출자는 Start 이전에 serviceStopWG.Add(1)을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

// HealthChecker 서비스 또는 외부 의존성의 상태를 보고하는 인터페이스입니다.
type HealthChecker interface {
	// Health 정상이면 nil, 그렇지 않으면 원인을 설명하는 에러를 반환합니다.
	Health() error
}
