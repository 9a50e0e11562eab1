package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adey/inkwell/internal/config"
)

// NewLogger builds the application logger. Output goes to a rotated file;
// the interactive UI owns the terminal, so there is no console core unless
// the caller tees one in. An empty file path yields a no-op logger.
func NewLogger(cfg config.LoggerConfig) *zap.Logger {
	if cfg.File == "" {
		return zap.NewNop()
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	// lumberjack handles rotation and thread-safe writes.
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("inkwell")
}
