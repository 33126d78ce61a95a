package middleware

import (
	"io"

	applog "github.com/darkkaiser/errcat-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 내부 로그의 컴포넌트 이름
const componentEcho = "api.echo"

// Logger Echo의 log.Logger 인터페이스(github.com/labstack/gommon/log)를 애플리케이션 로거에 연결하는 어댑터입니다.
// Echo가 남기는 로그에는 component=api.echo 필드가 붙습니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", componentEcho)
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Echo 고유의 Prefix/Header 출력 형식은 사용하지 않습니다.
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 애플리케이션 로그 레벨을 Echo의 로그 레벨로 변환합니다.
// Echo에 대응하는 레벨이 없는 Trace, Fatal, Panic은 OFF로 변환됩니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel Echo의 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	levels := map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
	if level, ok := levels[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) Print(i ...any) { l.entry().Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.entry().Printf(format, a...) }
func (l Logger) Printj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...any) { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.entry().Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...any) { l.entry().Info(i...) }
func (l Logger) Infof(format string, a ...any) { l.entry().Infof(format, a...) }
func (l Logger) Infoj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...any) { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, a ...any) { l.entry().Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...any) { l.entry().Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.entry().Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...any) { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.entry().Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...any) { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.entry().Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Panic() }
