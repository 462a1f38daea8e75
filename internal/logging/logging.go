package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diegok/duopong/internal/config"
)

// Setup configures a JSON logger writing to a rotating file. Every entry
// carries the session id of this process. The returned closer flushes and
// closes the file.
func Setup(cfg *config.Config) (*logrus.Entry, io.Closer) {
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}

	log := New(file, cfg.LogLevel)
	return log, file
}

// New builds a session-tagged logger on any writer
func New(w io.Writer, level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(w)
	logger.SetLevel(level)

	return logger.WithField("session", uuid.NewString())
}
