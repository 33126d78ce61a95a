package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/errcat-server/internal/config"
	"github.com/darkkaiser/errcat-server/internal/pkg/version"
	"github.com/darkkaiser/errcat-server/internal/service"
	"github.com/darkkaiser/errcat-server/internal/service/alert"
	"github.com/darkkaiser/errcat-server/internal/service/api"
	"github.com/darkkaiser/errcat-server/internal/service/companion"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTP API 서버를 실행합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}
	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Fprintf(cmd.OutOrStdout(), banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     runEnvironment(appConfig.Debug),
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 3. 에러 카탈로그 구성 (실패하면 서버를 시작하지 않는다)
	cat, err := buildCatalog(appConfig)
	if err != nil {
		return fmt.Errorf("에러 카탈로그 구성 실패: %w", err)
	}
	applog.WithComponentAndFields("main", applog.Fields{
		"codes":      cat.Len(),
		"categories": cat.Categories(),
	}).Info("에러 카탈로그 구성 완료")

	// 4. 서비스 생성
	notifier, err := alert.New(appConfig.Alert.Telegram, appConfig.Debug)
	if err != nil {
		return fmt.Errorf("알림 채널 초기화 실패: %w", err)
	}

	var services []service.Service
	var companionChecker service.HealthChecker
	if appConfig.Companion.Enabled {
		monitor := companion.NewMonitor(appConfig.Companion, notifier)
		services = append(services, monitor)
		companionChecker = monitor
	}
	services = append(services, api.NewService(appConfig, cat, companionChecker, notifier, buildInfo))

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 5. 서비스 시작
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	select {
	case sig := <-termC:
		applog.WithComponentAndFields("main", applog.Fields{
			"signal": sig.String(),
		}).Info("종료 신호 수신")
	case <-cmd.Context().Done():
		applog.WithComponent("main").Info("종료 요청 수신")
	}

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent("main").Info("서버 종료 완료")

	return nil
}

// runEnvironment 로그에 남길 실행 환경 이름을 반환합니다.
func runEnvironment(debug bool) string {
	if debug {
		return "development"
	}
	return "production"
}
