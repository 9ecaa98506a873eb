package logger

import (
	"io"
	"os"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger for one binary. Production writes JSON
// tagged with the app and component; other environments use the console.
func Setup(cfg *config.Config, component string) {
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = New(cfg, os.Stdout).With().Str("component", component).Logger()

	level := Level(cfg)
	zerolog.SetGlobalLevel(level)

	log.Debug().Str("level", level.String()).Msg("logger initialized")
}

// New builds the base logger writing to out.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg.Server.Env == constant.ServerEnvProduction {
		return zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// Level parses LOG_LEVEL. Unset or unknown values fall back to info in
// production and debug elsewhere.
func Level(cfg *config.Config) zerolog.Level {
	fallback := zerolog.DebugLevel
	if cfg.Server.Env == constant.ServerEnvProduction {
		fallback = zerolog.InfoLevel
	}

	if cfg.Server.LogLevel == "" {
		return fallback
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Warn().Str("log_level", cfg.Server.LogLevel).Msg("unknown log level")

		return fallback
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
