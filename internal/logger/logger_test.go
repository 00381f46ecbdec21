package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lawfully-illegal/masterhub/internal/config"
)

func TestLoggerServiceWithoutLicenseKey(t *testing.T) {
	ls, err := NewLoggerService(config.DefaultObservabilityConfig())
	if err != nil {
		t.Fatalf("NewLoggerService: %v", err)
	}
	if ls.GetApplication() != nil {
		t.Fatalf("no application expected without a license key")
	}

	// Both are no-ops without an application.
	ls.Shutdown()
	var nilService *LoggerService
	nilService.Shutdown()
}

func TestJSONLoggerFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var out bytes.Buffer
	log := NewLoggerWithWriter(cfg, nil, &out)

	log.Debug().Msg("hidden")
	log.Info().Str("term", "money").Msg("defined")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("production defaults to info, got %d lines: %q", len(lines), out.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	for key, want := range map[string]string{
		"service":     "masterhub",
		"environment": "production",
		"message":     "defined",
		"term":        "money",
		"level":       "info",
	} {
		if entry[key] != want {
			t.Fatalf("%s = %v, want %q", key, entry[key], want)
		}
	}
}

func TestConsoleLoggerIsNotJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var out bytes.Buffer
	log := NewLoggerWithWriter(cfg, nil, &out)
	log.Debug().Msg("console line")

	if !strings.Contains(out.String(), "console line") {
		t.Fatalf("debug line missing in development: %q", out.String())
	}
	if json.Valid(bytes.TrimSpace(out.Bytes())) {
		t.Fatalf("console output must not be JSON")
	}
}
