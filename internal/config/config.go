package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/errcat-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "errcat-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 사용하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: ERRCAT_API__WS__LISTEN_PORT=8080 -> api.ws.listen_port
	EnvPrefix = "ERRCAT_"
)

// 기본값
const (
	DefaultLanguage          = "ko"
	DefaultCompanionTimeout  = 5 * time.Second
	DefaultCompanionTimeSpec = "@every 30s"
	DefaultListenPort        = 2443
	DefaultRequestsPerSecond = 20
	DefaultBurst             = 40
)

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Catalog   CatalogConfig   `json:"catalog"`
	Companion CompanionConfig `json:"companion"`
	Alert     AlertConfig     `json:"alert"`
	API       APIConfig       `json:"api"`
}

// CatalogConfig 에러 카탈로그 설정입니다.
type CatalogConfig struct {
	// DefaultLanguage lang 파라미터와 Accept-Language 헤더가 모두 없을 때 사용할 언어
	DefaultLanguage string `json:"default_language" validate:"oneof=ko en"`

	// OverridesFile 내장 카테고리 뒤에 병합할 YAML/JSON 카테고리 파일 (선택)
	OverridesFile string `json:"overrides_file" validate:"omitempty,file"`
}

// CompanionConfig 동반 서버(로컬 생성 서버) 헬스체크 설정입니다.
type CompanionConfig struct {
	Enabled   bool          `json:"enabled"`
	HealthURL string        `json:"health_url" validate:"required_if=Enabled true,omitempty,url"`
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`
	TimeSpec  string        `json:"time_spec" validate:"required,cron_spec"`
}

// AlertConfig 운영자 알림 설정입니다.
type AlertConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 설정입니다. BotToken이 비어 있으면 알림을 보내지 않습니다.
type TelegramConfig struct {
	BotToken string `json:"bot_token" validate:"omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_with=BotToken"`
}

// Enabled 봇 토큰이 설정되어 있는지 여부를 반환합니다.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// APIConfig REST API 서버 설정입니다.
type APIConfig struct {
	WS        WSConfig        `json:"ws"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// WSConfig 웹 서버의 포트 및 TLS 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`

	// MaxConnections 동시에 수락할 최대 연결 수 (0: 제한 없음, TLS 서버에는 적용되지 않음)
	MaxConnections int `json:"max_connections" validate:"min=0"`
}

// CORSConfig CORS 허용 Origin 목록입니다. "*" 하나만 쓰거나 구체적인 Origin만 나열해야 합니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// RateLimitConfig IP별 요청 속도 제한 설정입니다.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"gt=0"`
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			DefaultLanguage: DefaultLanguage,
		},
		Companion: CompanionConfig{
			Timeout:  DefaultCompanionTimeout,
			TimeSpec: DefaultCompanionTimeSpec,
		},
		API: APIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
		},
	}
}

// validate 구조체 태그 기반 검증 뒤에 태그로 표현할 수 없는 규칙을 검사합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c); err != nil {
		return err
	}

	origins := c.API.CORS.AllowOrigins
	for _, origin := range origins {
		if strings.TrimSpace(origin) == "*" && len(origins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return nil
}

// VerifyRecommendations 실행을 막지는 않지만 운영 시 주의가 필요한 설정에 대한 경고를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.WS.ListenPort))
	}
	if !c.Debug && len(c.API.CORS.AllowOrigins) == 1 && c.API.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "운영 모드에서 모든 Origin(*)의 CORS 요청을 허용하고 있습니다. 허용할 도메인을 명시하는 것을 권장합니다")
	}
	if c.API.WS.TLSServer && c.API.WS.MaxConnections > 0 {
		warnings = append(warnings, "TLS 서버에는 동시 연결 수 제한(max_connections)이 적용되지 않습니다")
	}
	if c.Companion.Enabled && !c.Alert.Telegram.Enabled() {
		warnings = append(warnings, "동반 서버 헬스체크가 활성화되어 있지만 알림(alert.telegram)이 설정되지 않아 상태 변화를 통보받을 수 없습니다")
	}

	return warnings
}

// normalizeEnvKey 환경 변수 이름을 koanf 키로 변환합니다.
// 예: ERRCAT_API__RATE_LIMIT__BURST -> api.rate_limit.burst
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순서로 설정을 겹쳐서 로드합니다.
// filename이 빈 문자열이면 설정 파일 단계를 건너뜁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
			}
			return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (가장 높은 우선순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
			Result:           &appConfig,
			TagName:          "json",
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		source := filename
		if source == "" {
			source = "환경 변수"
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", source))
	}

	return &appConfig, nil
}
