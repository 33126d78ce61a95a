package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidator_CustomTags(t *testing.T) {
	t.Parallel()

	v := newValidator()

	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"cors_origin 와일드카드", "*", "cors_origin", true},
		{"cors_origin 정상", "https://editor.example.com", "cors_origin", true},
		{"cors_origin 경로 포함", "https://editor.example.com/app", "cors_origin", false},
		{"cron_spec @every", "@every 1m", "cron_spec", true},
		{"cron_spec 6필드", "0 */5 * * * *", "cron_spec", true},
		{"cron_spec 5필드", "*/5 * * * *", "cron_spec", false},
		{"telegram_bot_token 정상", validBotToken, "telegram_bot_token", true},
		{"telegram_bot_token 콜론 없음", "123456789ABCDEF", "telegram_bot_token", false},
		{"telegram_bot_token 짧은 비밀키", "123456789:short", "telegram_bot_token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCheckStruct_UsesJSONKeyPath(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()
	cfg.API.RateLimit.Burst = -5

	err := checkStruct(newValidator(), &cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "api.rate_limit.burst")
		assert.NotContains(t, err.Error(), "RateLimit", "Go 필드명이 아닌 설정 키가 보여야 합니다")
	}
}
