package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		" warn ":  logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"trace":   logrus.TraceLevel,
		"fatal":   logrus.FatalLevel,
		"":        logrus.InfoLevel,
		"chatty":  logrus.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithError_IncludesServiceAndError(t *testing.T) {
	var buf bytes.Buffer
	l := New("newscheck-test", "info", &buf)

	l.WithError(errors.New("boom")).Error("request failed")

	out := buf.String()
	if !strings.Contains(out, "service=newscheck-test") {
		t.Errorf("Expected service field in %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("Expected error field in %q", out)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("svc", "error", &buf)

	l.Service().Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at error level, got %q", buf.String())
	}
}

func TestNewFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "newscheck.log")

	l, closer, err := NewFile("svc", "debug", path)
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	l.WithRequest("GET", "http://localhost/api/news", "req-1").Debug("sending")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", data, err)
	}
	if entry["message"] != "sending" || entry["request_id"] != "req-1" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}
