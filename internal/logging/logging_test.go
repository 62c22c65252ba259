package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGenerateSessionID(t *testing.T) {
	id := GenerateSessionID()

	// YYYYMMDD_HHMMSS_xxxx
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("unexpected session ID format: %q", id)
	}
	if len(parts[0]) != 8 || len(parts[1]) != 6 || len(parts[2]) != 4 {
		t.Errorf("unexpected segment lengths in %q", id)
	}

	if other := GenerateSessionID(); other == id {
		t.Error("consecutive session IDs should differ")
	}
}

func TestShortSessionID(t *testing.T) {
	if got := ShortSessionID("20251217_205106_a7b3"); got != "a7b3" {
		t.Errorf("ShortSessionID = %q, want a7b3", got)
	}
	if got := ShortSessionID("ab"); got != "ab" {
		t.Errorf("short input should pass through, got %q", got)
	}
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()

	rotator, err := NewLogRotator(dir, 1, 2, 1, false)
	if err != nil {
		t.Fatalf("NewLogRotator failed: %v", err)
	}
	defer func() { _ = rotator.Close() }()

	// Force the threshold low so a second write triggers rotation.
	rotator.maxSize = 64

	line := bytes.Repeat([]byte("x"), 48)
	for i := 0; i < 2; i++ {
		if _, err := rotator.Write(append(line, '\n')); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "dimmer.log.") {
			backups++
		}
	}
	if backups == 0 {
		t.Errorf("expected a rotated backup file in %v", names(entries))
	}
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, cleanup, err := NewWithFile(FileConfig{
		Config: Config{
			Level:      zerolog.InfoLevel,
			Format:     "console",
			TimeFormat: ConsoleTimeFormat,
		},
		Dir: dir,
	})
	if err != nil {
		t.Fatalf("NewWithFile failed: %v", err)
	}

	logger.Info().Str("component", "test").Msg("hello")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "dimmer.log"))
	if err != nil {
		t.Fatalf("reading log file failed: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file missing JSON fields: %s", data)
	}
}

func names(entries []os.DirEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}
