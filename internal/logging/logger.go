package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"healthscope/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds the application logger: one rotating JSON file per level
// under the configured log directory, plus a readable console core. The
// rotation settings come from the logging section of the config.
func Init(projectRoot string, cfg config.LoggingConfig) (*zap.Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		TimeKey:      "time",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	logDir := filepath.Join(projectRoot, cfg.Directory)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	levels := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	}

	// One core per level so each file holds exactly that level. A log
	// entry is offered to every core; the LevelEnabler decides.
	cores := make([]zapcore.Core, 0, len(levels)+1)
	for _, level := range levels {
		cores = append(cores, newFileCore(logDir, level, cfg, encoderConfig))
	}
	cores = append(cores, newConsoleCore())

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// newFileCore creates a core writing a single level to a rotating file
// named like '2025-07-30-info.log'.
func newFileCore(logDir string, level zapcore.Level, cfg config.LoggingConfig, encoderConfig zapcore.EncoderConfig) zapcore.Core {
	fileName := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", time.Now().Format("2006-01-02"), level.String()))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	levelEnabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l == level
	})

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writer,
		levelEnabler,
	)
}

// newConsoleCore creates a core that writes everything to the console in
// a human-readable, colored format.
func newConsoleCore() zapcore.Core {
	levelEnabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.DebugLevel
	})

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig),
		zapcore.AddSync(os.Stdout),
		levelEnabler,
	)
}
