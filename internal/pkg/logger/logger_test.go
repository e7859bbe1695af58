package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	lgr := Component("placements")
	lgr.Info().Int64("placementId", 7).Msg("placement approved")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "placements" {
		t.Fatalf("expected component field, got %v", entry["component"])
	}
	if entry["message"] != "placement approved" {
		t.Fatalf("unexpected message %v", entry["message"])
	}
}

func TestConfigureFallsBackToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: LogLevel("verbose"), Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}

	Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output should be suppressed at info level")
	}
}
