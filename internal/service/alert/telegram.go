package alert

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/darkkaiser/errcat-server/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	// httpClientTimeout 텔레그램 API 호출 하나에 허용되는 최대 시간입니다.
	httpClientTimeout = 30 * time.Second

	// messageMaxLength 텔레그램 Bot API의 메시지 길이 제한(4096자)에 여유를 둔 값입니다.
	messageMaxLength = 3900

	// 텔레그램은 같은 채팅방에 초당 1건 정도의 발송을 권장합니다.
	sendRateLimit = 1
	sendRateBurst = 5
)

// botClient 텔레그램 봇 API 중 알림 발송에 필요한 부분만 추상화한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram 설정된 채팅방으로 텍스트 메시지를 발송하는 Notifier입니다.
type Telegram struct {
	appName string
	chatID  int64

	bot     botClient
	limiter *rate.Limiter
}

// NewTelegram 텔레그램 봇 API 클라이언트를 초기화하고 Telegram Notifier를 생성합니다.
// 초기화 과정에서 봇 토큰 검증을 위해 getMe API를 호출합니다.
func NewTelegram(cfg config.TelegramConfig, debug bool) (*Telegram, error) {
	return newTelegram(cfg, debug, tgbotapi.APIEndpoint)
}

func newTelegram(cfg config.TelegramConfig, debug bool, apiEndpoint string) (*Telegram, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug("텔레그램 봇 API 클라이언트를 초기화합니다")

	// 기본 http.DefaultClient는 타임아웃이 없으므로 반드시 명시적으로 설정합니다.
	client := &http.Client{
		Timeout: httpClientTimeout,
	}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, apiEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요.")
	}
	botAPI.Debug = debug

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_username": botAPI.Self.UserName,
		"chat_id":      cfg.ChatID,
	}).Info("텔레그램 알림이 활성화되었습니다")

	return newTelegramWithBot(botAPI, cfg.ChatID), nil
}

func newTelegramWithBot(bot botClient, chatID int64) *Telegram {
	return &Telegram{
		appName: config.AppName,
		chatID:  chatID,

		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(sendRateLimit), sendRateBurst),
	}
}

// Notify message 앞에 애플리케이션 이름을 붙여 텍스트 메시지로 발송합니다.
// 길이 제한을 초과하는 메시지는 잘라서 발송합니다.
func (t *Telegram) Notify(ctx context.Context, message string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	// Wait가 토큰을 즉시 내주었더라도 이미 취소된 컨텍스트라면 발송하지 않습니다.
	if err := ctx.Err(); err != nil {
		return err
	}

	text := strutil.Truncate(fmt.Sprintf("[%s]\n%s", t.appName, message), messageMaxLength)

	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": t.chatID,
			"error":   err,
		}).Warn("텔레그램 메시지 발송에 실패했습니다")

		return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 메시지 발송에 실패했습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": t.chatID,
	}).Debug("텔레그램 메시지를 발송했습니다")

	return nil
}

// New 설정에 따라 사용할 Notifier를 생성합니다. 봇 토큰이 없으면 Nop을 반환합니다.
func New(cfg config.TelegramConfig, debug bool) (Notifier, error) {
	if !cfg.Enabled() {
		applog.WithComponent(component).Info("텔레그램 봇 토큰이 설정되지 않아 운영자 알림을 발송하지 않습니다")
		return Nop{}, nil
	}

	t, err := NewTelegram(cfg, debug)
	if err != nil {
		return nil, err
	}
	return t, nil
}
