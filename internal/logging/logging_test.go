package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Info("tracks rendered", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "tracks rendered") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("output %q missing key/value", out)
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	if got := Level(true); got != log.DebugLevel {
		t.Errorf("Level(true) = %v, want debug", got)
	}
	if got := Level(false); got != log.InfoLevel {
		t.Errorf("Level(false) = %v, want info", got)
	}

	var buf bytes.Buffer
	New(&buf, Level(true)).Debug("rendered tracks")
	if !strings.Contains(buf.String(), "rendered tracks") {
		t.Errorf("debug message dropped at Level(true): %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
