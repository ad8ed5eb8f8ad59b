package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"freightline/backend/internal/config"
)

// NewLogger builds the application logger. Output always goes to stdout; when
// cfg.LogsDirectory is set, a rotated log file is written there as well.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.InfoLevel),
	}

	if cfg.LogsDirectory != "" {
		runTimestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
		logFile := fmt.Sprintf("%s/freightline-backend-%s.log", cfg.LogsDirectory, runTimestamp)

		lumberjackLogger := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB before it rolls
			MaxBackups: 7,
			MaxAge:     30, // Days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lumberjackLogger), zap.InfoLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, nil
}
