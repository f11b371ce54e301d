package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"nonsense", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		Init(tt.input, "text", &bytes.Buffer{})
		if got := Log.GetLevel(); got != tt.expected {
			t.Errorf("Init(%q) level = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "JSON", &buf)

	Component("encounter").Info("triggered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "encounter" {
		t.Errorf("component = %v, want encounter", entry["component"])
	}
	if entry["msg"] != "triggered" {
		t.Errorf("msg = %v, want triggered", entry["msg"])
	}
}

func TestInitText(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "text", &buf)

	Log.Debug("hidden")
	Log.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("info entry missing from output")
	}
}
