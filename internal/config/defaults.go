package config

const (
	defaultConfigPath  = "~/.config/movieshelf/config.toml"
	projectConfigName  = "movieshelf.toml"
	defaultBind        = "127.0.0.1:7488"
	defaultStateDir    = "~/.local/state/movieshelf"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	apiTokenEnv        = "MOVIESHELF_API_TOKEN"
	defaultSeedMovieID = 1
	defaultSeedTitle   = "A River Runs Through It"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind: defaultBind,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultSeed returns the catalogue used when no seed is configured.
func DefaultSeed() []SeedMovie {
	return []SeedMovie{{ID: defaultSeedMovieID, Title: defaultSeedTitle}}
}
