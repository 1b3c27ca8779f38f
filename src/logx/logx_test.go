package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"unknown": zapcore.DebugLevel,
		"":        zapcore.DebugLevel,
	}
	for in, want := range tests {
		if got := GetLoggerLevelByString(in); got != want {
			t.Errorf("GetLoggerLevelByString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debugf("hidden %d", 1)
	l.Infof("piece moved from %d to %d", 12, 20)
	l.Warn("careful")
	if err := l.Sync(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	var got []string
	for _, line := range lines {
		var rec map[string]interface{}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad json %q: %v", line, err)
		}
		got = append(got, rec["LEVEL"].(string)+" "+rec["MESSAGE"].(string))
		if _, ok := rec["TIME"]; !ok {
			t.Errorf("no TIME in %q", line)
		}
	}
	want := []string{"info piece moved from 12 to 20", "warn careful"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestNopLogx(t *testing.T) {
	l := NewNopLogx()
	l.Info("dropped")
	l.Errorf("dropped %s", "too")
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
	var _ Logger = l
}
