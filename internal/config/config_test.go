package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"movieshelf/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "movieshelf.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultConfigExpandsPathsAndSeeds(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("MOVIESHELF_API_TOKEN", "")
	chdirForTest(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "state", "movieshelf")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.ServerURL() != "http://127.0.0.1:7488" {
		t.Fatalf("unexpected server url: %q", cfg.ServerURL())
	}
	if len(cfg.Seed.Movies) != 1 || cfg.Seed.Movies[0].ID != 1 || cfg.Seed.Movies[0].Title != "A River Runs Through It" {
		t.Fatalf("unexpected default seed: %+v", cfg.Seed.Movies)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if cfg.LockPath() != filepath.Join(wantState, "movieshelf.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("MOVIESHELF_API_TOKEN", "")
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[server]
bind = "0.0.0.0:9000"
base_url = "http://movies.lan:9000/"

[logging]
format = "JSON"
level = " Debug "

[seed]
file = "extra.yaml"

[[seed.movies]]
id = 4
title = "Heat"

[[seed.movies]]
id = 9
title = "Ran"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q %v", resolved, exists)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.ServerURL() != "http://movies.lan:9000" {
		t.Fatalf("unexpected server url: %q", cfg.ServerURL())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}
	if cfg.Seed.File != filepath.Join(dir, "extra.yaml") {
		t.Fatalf("expected seed file relative to config dir, got %q", cfg.Seed.File)
	}
	if len(cfg.Seed.Movies) != 2 || cfg.Seed.Movies[1].Title != "Ran" {
		t.Fatalf("unexpected seed movies: %+v", cfg.Seed.Movies)
	}
}

func TestLoadEmptySeed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[seed]\nempty = true\n")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Seed.Movies) != 0 {
		t.Fatalf("expected empty seed, got %+v", cfg.Seed.Movies)
	}
}

func TestEnvVarOverridesAPIToken(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[server]\napi_token = \"file-token\"\n")
	t.Setenv("MOVIESHELF_API_TOKEN", "env-token")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.APIToken != "env-token" {
		t.Fatalf("expected token from env, got %q", cfg.Server.APIToken)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[server\nbind=")
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"bind", func(c *config.Config) { c.Server.Bind = "localhost" }, "server.bind"},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"component level", func(c *config.Config) { c.Logging.ComponentLevels = map[string]string{"http-access": "chatty"} }, "logging.component_levels.http-access"},
		{"seed id", func(c *config.Config) { c.Seed.Movies = []config.SeedMovie{{ID: 0, Title: "x"}} }, "seed.movies[0].id"},
		{"seed duplicate", func(c *config.Config) {
			c.Seed.Movies = []config.SeedMovie{{ID: 2, Title: "x"}, {ID: 2, Title: "y"}}
		}, "seed.movies[1].id"},
		{"seed title", func(c *config.Config) { c.Seed.Movies = []config.SeedMovie{{ID: 1, Title: "  "}} }, "seed.movies[0].title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected sample bind: %q", cfg.Server.Bind)
	}
	if len(cfg.Seed.Movies) != 1 || cfg.Seed.Movies[0].Title != "A River Runs Through It" {
		t.Fatalf("unexpected sample seed: %+v", cfg.Seed.Movies)
	}
}

func TestEncodeRedactsToken(t *testing.T) {
	cfg := config.Default()
	cfg.Server.APIToken = "secret"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Fatalf("expected token redacted, got %s", data)
	}
	if cfg.Server.APIToken != "secret" {
		t.Fatal("Encode must not modify the receiver")
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
