package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used across the process. An unknown
// level name falls back to info.
func SetupLogging(level string) *logrus.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	logger.Out = out
	logger.Level = parsed

	return logger
}
