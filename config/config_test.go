package config

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseConfig(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{"log":"debug"}`))
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Log != LogLevelDebug {
			t.Errorf("Log = %q, want %q", cfg.Log, LogLevelDebug)
		}
	})

	t.Run("empty object keeps default", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{}`))
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want %+v", cfg, Default())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseConfig([]byte(`{"log":`)); err == nil {
			t.Fatal("expected error for truncated json")
		}
	})
}

func TestLogLevelZap(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zapcore.Level
	}{
		{LogLevelDebug, zapcore.DebugLevel},
		{"trace", zapcore.DebugLevel},
		{LogLevelInfo, zapcore.InfoLevel},
		{"notice", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{LogLevelError, zapcore.ErrorLevel},
		{LogLevelFatal, zapcore.FatalLevel},
		{LogLevelPanic, zapcore.PanicLevel},
		{"verbose", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Zap().Level(); got != tt.want {
				t.Errorf("%q.Zap() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
