package alert

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/darkkaiser/errcat-server/internal/config"
	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// fakeBot 발송된 메시지를 기록하는 botClient 구현체입니다.
type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

// newBotAPIServer getMe와 sendMessage에 응답하는 가짜 텔레그램 API 서버를 생성합니다.
func newBotAPIServer(t *testing.T, texts chan<- string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case !strings.HasPrefix(r.URL.Path, "/bot"+testBotToken+"/"):
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"errcat","username":"errcat_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if texts != nil {
				texts <- r.FormValue("text")
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":1234,"type":"private"},"text":"ok"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// =============================================================================
// Constructor
// =============================================================================

func TestNewTelegram_AgainstFakeAPI(t *testing.T) {
	t.Parallel()

	texts := make(chan string, 1)
	server := newBotAPIServer(t, texts)

	tg, err := newTelegram(config.TelegramConfig{BotToken: testBotToken, ChatID: 1234}, false, server.URL+"/bot%s/%s")
	require.NoError(t, err)

	require.NoError(t, tg.Notify(context.Background(), "동반 서버 응답 없음"))
	assert.Equal(t, "[errcat-server]\n동반 서버 응답 없음", <-texts)
}

func TestNewTelegram_InvalidToken(t *testing.T) {
	t.Parallel()

	server := newBotAPIServer(t, nil)

	_, err := newTelegram(config.TelegramConfig{BotToken: "987654321:WRONG-TOKEN-000000000000000000", ChatID: 1234}, false, server.URL+"/bot%s/%s")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "BotToken")
}

func TestNew_SelectsImplementation(t *testing.T) {
	t.Parallel()

	n, err := New(config.TelegramConfig{}, false)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, n)
	assert.NoError(t, n.Notify(context.Background(), "ignored"))
}

// =============================================================================
// Notify
// =============================================================================

func TestTelegram_Notify(t *testing.T) {
	t.Parallel()

	t.Run("채팅방과 접두사", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		tg := newTelegramWithBot(bot, 42)

		require.NoError(t, tg.Notify(context.Background(), "hello"))
		require.Len(t, bot.sent, 1)
		assert.Equal(t, int64(42), bot.sent[0].ChatID)
		assert.Equal(t, "[errcat-server]\nhello", bot.sent[0].Text)
		assert.Empty(t, bot.sent[0].ParseMode, "일반 텍스트로 발송해야 합니다")
	})

	t.Run("긴 메시지는 잘라서 발송", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		tg := newTelegramWithBot(bot, 42)

		require.NoError(t, tg.Notify(context.Background(), strings.Repeat("오류", 5000)))
		require.Len(t, bot.sent, 1)
		assert.Equal(t, messageMaxLength, utf8.RuneCountInString(bot.sent[0].Text))
	})

	t.Run("발송 실패는 Unavailable", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{err: errors.New("network down")}
		tg := newTelegramWithBot(bot, 42)

		err := tg.Notify(context.Background(), "hello")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("취소된 컨텍스트", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		tg := newTelegramWithBot(bot, 42)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, tg.Notify(ctx, "hello"), context.Canceled)
		assert.Empty(t, bot.sent)
	})
}
