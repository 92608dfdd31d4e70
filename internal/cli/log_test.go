package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  string
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("Rendered", "format", "svg") }, "format=svg"},
		{"debug hidden at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit", "key", "ab12") }, ""},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit", "key", "ab12") }, "key=ab12"},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("label clipped", "panel", 2) }, "panel=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("unexpected output %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("Wrote fig.pdf")
	if !regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d\d `).MatchString(buf.String()) {
		t.Errorf("output %q should start with an HH:MM:SS.ms timestamp", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Rendered fig.toml")

	if !regexp.MustCompile(`Rendered fig\.toml \(\d+(\.\d+)?[mµn]?s\)`).MatchString(buf.String()) {
		t.Errorf("output %q should report the elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should yield the default logger")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	loggerFromContext(ctx).Info("Wrote fig.svg")
	if !strings.Contains(buf.String(), "Wrote fig.svg") {
		t.Errorf("attached logger output = %q", buf.String())
	}
}
