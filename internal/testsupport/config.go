package testsupport

import (
	"path/filepath"
	"testing"

	"movieshelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// The server binds an ephemeral port and the catalogue holds the default seed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Logging.Format = "json"
	cfgVal.Seed.Movies = config.DefaultSeed()

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAPIToken requires bearer authentication for API writes.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.APIToken = token
	}
}

// WithSeedMovies replaces the inline seed entries.
func WithSeedMovies(entries ...config.SeedMovie) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Seed.Movies = entries
		b.cfg.Seed.Empty = len(entries) == 0
	}
}

// WithSeedFile writes a YAML seed file under the base directory and
// references it from the config.
func WithSeedFile(contents string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "seed.yaml")
		WriteFile(b.t, path, contents)
		b.cfg.Seed.File = path
	}
}
