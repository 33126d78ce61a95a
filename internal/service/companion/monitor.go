package companion

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/darkkaiser/errcat-server/internal/service/alert"
	"github.com/darkkaiser/errcat-server/pkg/cronx"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// prober Monitor가 사용하는 헬스체크 수행 인터페이스입니다.
type prober interface {
	Check(ctx context.Context) Status
}

// Monitor 설정된 Cron 스케줄에 따라 동반 서버를 확인하고 마지막 결과를 보관하는 서비스입니다.
//
// 정상과 비정상 사이의 상태 전이가 일어나면 운영자에게 알림을 발송합니다.
// 첫 번째 확인 결과가 비정상이면 그것도 전이로 간주합니다.
type Monitor struct {
	healthURL string
	timeSpec  string

	prober   prober
	notifier alert.Notifier

	mu      sync.RWMutex
	last    Status
	checked bool

	// probeMu 스케줄 실행이 겹치지 않도록 헬스체크를 직렬화합니다.
	probeMu sync.Mutex

	running   bool
	runningMu sync.Mutex
}

// NewMonitor Monitor 인스턴스를 생성합니다.
func NewMonitor(cfg config.CompanionConfig, notifier alert.Notifier) *Monitor {
	if notifier == nil {
		notifier = alert.Nop{}
	}

	return &Monitor{
		healthURL: cfg.HealthURL,
		timeSpec:  cfg.TimeSpec,

		prober:   NewChecker(cfg.HealthURL, cfg.Timeout),
		notifier: notifier,
	}
}

// Start 즉시 한 번 헬스체크를 수행한 뒤 Cron 스케줄로 반복 실행합니다.
// serviceStopCtx가 취소되면 스케줄러를 중지하고 진행 중인 헬스체크가 끝나기를 기다린 뒤 serviceStopWG.Done()을 호출합니다.
func (m *Monitor) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"health_url": m.healthURL,
		"time_spec":  m.timeSpec,
	}).Info("동반 서버 헬스체크 서비스 시작중...")

	if m.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("동반 서버 헬스체크 서비스가 이미 시작되었습니다")
		return nil
	}

	c := cronx.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(m.timeSpec, func() { m.probe(serviceStopCtx) }); err != nil {
		defer serviceStopWG.Done()
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("헬스체크 스케줄을 등록할 수 없습니다 (time_spec=%q)", m.timeSpec))
	}

	m.running = true

	go m.run(serviceStopCtx, serviceStopWG, c)

	applog.WithComponent(component).Info("동반 서버 헬스체크 서비스 시작됨")

	return nil
}

func (m *Monitor) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, c *cron.Cron) {
	defer serviceStopWG.Done()

	m.probe(serviceStopCtx)

	c.Start()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("동반 서버 헬스체크 서비스 중지중...")

	// 실행 중인 작업이 모두 끝날 때까지 대기
	<-c.Stop().Done()

	m.runningMu.Lock()
	m.running = false
	m.runningMu.Unlock()

	applog.WithComponent(component).Info("동반 서버 헬스체크 서비스 중지됨")
}

// probe 헬스체크를 수행하고 결과를 기록합니다. 상태가 바뀌었으면 알림을 발송합니다.
func (m *Monitor) probe(ctx context.Context) {
	m.probeMu.Lock()
	defer m.probeMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	status := m.prober.Check(ctx)

	// 종료 중 취소로 실패한 결과는 동반 서버의 상태가 아니므로 기록하지 않습니다.
	if !status.Healthy && ctx.Err() != nil {
		return
	}

	m.mu.Lock()
	previous, checked := m.last, m.checked
	m.last = status
	m.checked = true
	m.mu.Unlock()

	fields := applog.Fields{
		"health_url":  m.healthURL,
		"healthy":     status.Healthy,
		"status_code": status.StatusCode,
		"latency_ms":  status.Latency.Milliseconds(),
	}
	if status.Err != nil {
		fields["error"] = status.Err
	}
	applog.WithComponentAndFields(component, fields).Debug("동반 서버 헬스체크 완료")

	var message string
	switch {
	case !checked && !status.Healthy:
		message = fmt.Sprintf("동반 서버가 응답하지 않습니다.\n%s\n\n%v", m.healthURL, status.Err)
	case checked && previous.Healthy && !status.Healthy:
		message = fmt.Sprintf("동반 서버 상태가 비정상으로 바뀌었습니다.\n%s\n\n%v", m.healthURL, status.Err)
	case checked && !previous.Healthy && status.Healthy:
		message = fmt.Sprintf("동반 서버가 정상 상태로 복구되었습니다.\n%s", m.healthURL)
	default:
		return
	}

	entry := applog.WithComponentAndFields(component, fields)
	if status.Healthy {
		entry.Info("동반 서버 상태가 정상으로 전이되었습니다")
	} else {
		entry.Warn("동반 서버 상태가 비정상으로 전이되었습니다")
	}

	if err := m.notifier.Notify(ctx, message); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("동반 서버 상태 알림 발송에 실패했습니다")
	}
}

// Last 마지막 헬스체크 결과를 반환합니다. 아직 한 번도 확인하지 않았다면 false를 반환합니다.
func (m *Monitor) Last() (Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.last, m.checked
}

// Health 마지막 헬스체크 결과를 에러로 변환합니다.
func (m *Monitor) Health() error {
	status, checked := m.Last()
	if !checked {
		return apperrors.New(apperrors.Unavailable, "동반 서버 헬스체크가 아직 수행되지 않았습니다")
	}
	if status.Healthy {
		return nil
	}
	if status.Err == nil {
		return apperrors.New(apperrors.Unavailable, "동반 서버가 비정상 상태입니다")
	}
	return apperrors.Wrap(status.Err, apperrors.Unavailable, "동반 서버가 비정상 상태입니다")
}
