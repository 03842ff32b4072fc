package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieshelf/internal/config"
	"movieshelf/internal/logging"
	"movieshelf/internal/requestctx"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "movieshelf.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("server ready")

	if got := readLog(t, cfg.Logging.File); !strings.Contains(got, "server ready") {
		t.Fatalf("expected message in log file, got %q", got)
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "movie-store").Info("movie added", logging.Int64(logging.FieldMovieID, 2), logging.String("title", "Inception"))

	got := readLog(t, logPath)
	for _, want := range []string{"INFO movie-store: movie added", "movie_id=2", "title=Inception"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", got)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")

	if got := readLog(t, logPath); !strings.Contains(got, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", got)
	}
}

func TestConsoleLoggerQuotesValuesWithSpaces(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quoted.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("movie added", logging.String("title", "A River Runs Through It"))

	if got := readLog(t, logPath); !strings.Contains(got, `title="A River Runs Through It"`) {
		t.Fatalf("expected quoted title, got %q", got)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["level"] != "info" || record["msg"] != "json message" || record["k"] != "v" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key in %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestComponentLevelOverrideSuppressesLowerLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "override.log")
	logger, err := logging.New(logging.Options{
		Format:          "console",
		Level:           "info",
		OutputPaths:     []string{logPath},
		ComponentLevels: map[string]string{"http-access": "warn"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "http-access").Info("request served")
	logging.NewComponentLogger(logger, "http-access").Warn("slow request")
	logging.NewComponentLogger(logger, "movie-store").Info("movie added")

	got := readLog(t, logPath)
	if strings.Contains(got, "request served") {
		t.Fatalf("expected info access log to be suppressed, got %q", got)
	}
	if !strings.Contains(got, "slow request") || !strings.Contains(got, "movie added") {
		t.Fatalf("expected warn access log and store log, got %q", got)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "context.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := requestctx.WithRequestID(context.Background(), "req-xyz")
	ctx = requestctx.WithRoute(ctx, "create")
	logging.WithContext(ctx, logger).Info("contextual log")

	got := readLog(t, logPath)
	if !strings.Contains(got, "INFO [create #req-xyz]: contextual log") {
		t.Fatalf("expected route and request id in header, got %q", got)
	}
	if strings.Contains(got, "correlation_id=") || strings.Contains(got, "route=") {
		t.Fatalf("expected header fields not to repeat as key=value, got %q", got)
	}
}

func TestConsoleHeaderShortensRequestID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "header.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := requestctx.WithRequestID(context.Background(), "1a2b3c4d-5e6f-7081-92a3-b4c5d6e7f809")
	ctx = requestctx.WithRoute(ctx, "detail")
	component := logging.NewComponentLogger(logger, "web-server")
	logging.WithContext(ctx, component).Info("movie shown", logging.Int64(logging.FieldMovieID, 3))
	logging.WithContext(requestctx.WithRequestID(context.Background(), "abc"), logger).Warn("no route")

	lines := strings.Split(strings.TrimSpace(readLog(t, logPath)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO web-server [detail #1a2b3c4d]: movie shown movie_id=3") {
		t.Fatalf("unexpected header in %q", lines[0])
	}
	if strings.Contains(lines[0], "5e6f") {
		t.Fatalf("expected request id to be shortened, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN [#abc]: no route") {
		t.Fatalf("unexpected header in %q", lines[1])
	}
}

func TestJSONLoggerKeepsFullContextFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json-context.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := requestctx.WithRequestID(context.Background(), "1a2b3c4d-5e6f-7081-92a3-b4c5d6e7f809")
	ctx = requestctx.WithRoute(ctx, "list")
	logging.WithContext(ctx, logger).Info("movies listed")

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record[logging.FieldCorrelationID] != "1a2b3c4d-5e6f-7081-92a3-b4c5d6e7f809" || record[logging.FieldRoute] != "list" {
		t.Fatalf("expected full context fields, got %v", record)
	}
}

func TestValidLevel(t *testing.T) {
	for _, value := range []string{"", "debug", "INFO", " warn ", "warning", "error"} {
		if !logging.ValidLevel(value) {
			t.Fatalf("expected %q to be valid", value)
		}
	}
	if logging.ValidLevel("verbose") {
		t.Fatal("expected verbose to be rejected")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("expected nop logger to be disabled")
	}
	logger.Error("ignored")
}
