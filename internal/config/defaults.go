package config

const (
	defaultLogDir        = "~/.local/share/audiosweep/logs"
	defaultLangCachePath = "~/.cache/audiosweep/languages.db"
	defaultTMDBBaseURL   = "https://api.themoviedb.org/3"
	defaultTMDBLanguage  = "en-US"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultConcurrency   = 4
	maxConcurrency       = 32
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			Concurrency: defaultConcurrency,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		LangCache: LangCache{
			Enabled: true,
			Path:    defaultLangCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
