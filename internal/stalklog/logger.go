// Package stalklog sets up the engine's structured logging: logrus with
// an optional prefixed text formatter and optional rotation, grounded on the
// teacher's internal/log package (firestige-Otus).
package stalklog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how the engine logs.
type Config struct {
	Level        string        `mapstructure:"level"`
	Prefixed     bool          `mapstructure:"prefixed"`
	FileAppender *FileAppender `mapstructure:"file"`
}

// FileAppender configures rotation for the optional file output, mirroring
// the teacher's lumberjack.Logger wiring.
type FileAppender struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// New builds a *logrus.Logger from cfg. Callers own the returned logger;
// nothing here touches logrus's process-global default.
func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	if cfg.Prefixed {
		logger.SetFormatter(&prefixed.TextFormatter{
			FullTimestamp: true,
		})
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)
	if cfg.FileAppender != nil && cfg.FileAppender.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FileAppender.Filename,
			MaxSize:    cfg.FileAppender.MaxSizeMB,
			MaxBackups: cfg.FileAppender.MaxBackups,
			MaxAge:     cfg.FileAppender.MaxAgeDays,
			Compress:   cfg.FileAppender.Compress,
		})
	}
	logger.SetOutput(io.MultiWriter(writers...))

	return logger, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
