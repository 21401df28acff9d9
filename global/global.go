package global

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/zerologr"
	"github.com/google/uuid"
	"github.com/nathanieltooley/pokeroster/roster"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	Opt GlobalConfig

	// SessionId tags every log line from one run
	SessionId string

	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// GlobalInit loads config from configDir, applies environment overrides and sets up logging.
// Problems are reported on stderr and defaults are used instead.
func GlobalInit(configDir string, shouldLog bool) {
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	config, err := LoadConfig(configDir)
	if err != nil {
		initLogger.Err(err).Msg("error occurred while loading config, using defaults")
	}

	config, err = ApplyEnv(config)
	if err != nil {
		initLogger.Err(err).Msg("error occurred while reading environment overrides")
	}

	Opt = config
	SessionId = uuid.NewString()

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = createLogger(configDir, level, shouldLog)
	roster.SetInternalLogger(zerologr.New(&log.Logger))

	log.Debug().Interface("config", Opt).Msg("loaded config")
}

func createFileWriter(configDir string) io.Writer {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs"), "pokeroster")
	if err != nil {
		initLogger.Err(err).Msg("couldn't create log dir, logging is off")
		return io.Discard
	}

	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level, shouldLog bool) zerolog.Logger {
	if !shouldLog {
		return zerolog.Nop()
	}

	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Str("session", SessionId).Logger().Level(level)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}
