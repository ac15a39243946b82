package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. It writes to stderr so stdout stays free
// for command output.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

func Init(isDev bool) {
	InitWithWriter(os.Stderr, isDev, os.Getenv("LOG_LEVEL"))
}

func InitWithWriter(out io.Writer, isDev bool, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if isDev {
		Log = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}).Level(lvl).With().Timestamp().Logger()
	} else {
		Log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	}
}

func IsDev() bool {
	env := os.Getenv("ENV")
	return env == "" || env == "dev" || env == "development"
}
