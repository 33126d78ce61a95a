package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/errcat-server/docs"
	"github.com/darkkaiser/errcat-server/internal/catalog"
	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/darkkaiser/errcat-server/internal/pkg/locale"
	"github.com/darkkaiser/errcat-server/internal/pkg/version"
	"github.com/darkkaiser/errcat-server/internal/service"
	"github.com/darkkaiser/errcat-server/internal/service/alert"
	"github.com/darkkaiser/errcat-server/internal/service/api/constants"
	"github.com/darkkaiser/errcat-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/errcat-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/errcat-server/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/netutil"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
	shutdownTimeout = 5 * time.Second

	// notifyTimeout 서버 오류 알림 전송의 최대 대기 시간
	notifyTimeout = 10 * time.Second
)

// Service 에러 카탈로그 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 서비스는 고루틴으로 실행되며, Start()로 시작하고 context 취소로 종료됩니다.
// 종료 시 진행 중인 요청은 최대 5초 동안 완료를 기다립니다.
type Service struct {
	appConfig *config.AppConfig

	catalog   *catalog.Catalog
	companion service.HealthChecker
	notifier  alert.Notifier

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
//
// companion은 동반 서버 모니터가 비활성화되어 있으면 nil을 전달합니다.
// notifier가 nil이면 알림을 보내지 않습니다.
func NewService(appConfig *config.AppConfig, cat *catalog.Catalog, companion service.HealthChecker, notifier alert.Notifier, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if cat == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if notifier == nil {
		notifier = alert.Nop{}
	}

	return &Service{
		appConfig: appConfig,

		catalog:   cat,
		companion: companion,
		notifier:  notifier,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 서버가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.catalog == nil {
		defer serviceStopWG.Done()
		return ErrCatalogNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	dependencies := map[string]service.HealthChecker{}
	if s.companion != nil {
		dependencies[constants.DependencyCompanionServer] = s.companion
	}

	negotiator := locale.NewNegotiator(catalog.Language(s.appConfig.Catalog.DefaultLanguage))

	systemHandler := system.New(s.catalog, s.buildInfo, dependencies)
	v1Handler := v1handler.New(s.catalog, negotiator)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		AllowOrigins:      s.appConfig.API.CORS.AllowOrigins,
		RequestsPerSecond: s.appConfig.API.RateLimit.RequestsPerSecond,
		Burst:             s.appConfig.API.RateLimit.Burst,
		EnableHSTS:        s.appConfig.API.WS.TLSServer,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
// 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.API.WS
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":            ws.ListenPort,
		"tls":             ws.TLSServer,
		"max_connections": ws.MaxConnections,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(s.serve(e))
}

// serve 리스너를 만들고 서버가 종료될 때까지 요청을 처리합니다.
// MaxConnections가 양수이면 동시 연결 수를 제한합니다.
func (s *Service) serve(e *echo.Echo) error {
	ws := s.appConfig.API.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.System, "포트를 열 수 없습니다 (address: %s)", address)
	}
	if ws.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, ws.MaxConnections)
	}

	if !ws.TLSServer {
		e.Server.Addr = address
		e.Listener = ln
		return e.StartServer(e.Server)
	}

	cert, err := tls.LoadX509KeyPair(ws.TLSCertFile, ws.TLSKeyFile)
	if err != nil {
		ln.Close()
		return apperrors.Wrap(err, apperrors.System, "TLS 인증서를 불러올 수 없습니다")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"h2", "http/1.1"},
	}
	e.TLSServer.Addr = address
	e.TLSServer.TLSConfig = tlsConfig
	e.TLSListener = tls.NewListener(ln, tlsConfig)

	return e.StartServer(e.TLSServer)
}

// handleServerError HTTP 서버 종료 원인을 처리합니다.
//
//   - nil, http.ErrServerClosed: 정상 종료
//   - 그 외: Error 레벨 로깅 후 알림 전송
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.WS.ListenPort,
		"error": err,
	}).Error(message)

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if notifyErr := s.notifier.Notify(ctx, fmt.Sprintf("%s\n\n%s", message, err)); notifyErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": notifyErr,
		}).Warn("서버 오류 알림 전송 실패")
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// 서버가 먼저 종료되면(포트 바인딩 실패 등) Shutdown 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Running 서비스 실행 여부를 반환합니다.
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
