package logger

import (
	"os"
	"panchkarma-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

const accessLogFileName = "panchkarma-access.log"

// NewLogrusLogger builds the access logger. Production appends JSON lines
// to the access log file; everywhere else it stays a plain text logger on
// stderr so request lines are readable during development.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	accessLogger := logrus.New()

	if internalConfig.App.Env != "production" {
		accessLogger.SetFormatter(&logrus.TextFormatter{})
		return accessLogger
	}

	accessLogger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(accessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		accessLogger.Info("Failed to log to file, using default stderr")
		return accessLogger
	}
	accessLogger.SetOutput(file)
	return accessLogger
}
