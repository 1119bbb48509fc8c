package logger

import (
	"strings"
	"testing"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(tt.level)); got != tt.want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	if svc.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	svc.Shutdown()

	var nilSvc *LoggerService
	if nilSvc.GetApplication() != nil {
		t.Fatal("nil service must report no application")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLogger(cfg)
	if l.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", l.GetLevel())
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	l := zerolog.Nop()
	got := WithTraceContext(l, nil)
	if got.GetLevel() != l.GetLevel() {
		t.Error("nil transaction must return the logger unchanged")
	}
}

func TestFormatPgxField(t *testing.T) {
	long := strings.Repeat("x", maxFieldLength+10)
	if got := formatPgxField(long); len(got) != maxFieldLength+3 {
		t.Errorf("long string not truncated: len %d", len(got))
	}

	got := formatPgxField([]byte(`{"id":1}`))
	if !strings.HasPrefix(got, "\n{") || !strings.Contains(got, `"id": 1`) {
		t.Errorf("json bytes not pretty-printed: %q", got)
	}

	if got := formatPgxField(42); got != "42" {
		t.Errorf("formatPgxField(42) = %q", got)
	}
}
