package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// All methods take a context first so request-scoped fields can be
// attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // "debug" uses development config
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the zap-backed Logger from config. Falls back to a
// production logger when the config is unparseable.
func Init(cfg ZapConfig) Logger {
	var zapCfg zap.Config
	if cfg.Mode == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}

	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))
	}

	return &zapLogger{sugar: l.Sugar()}
}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any)  { z.sugar.Debug(arg...) }
func (z *zapLogger) Info(ctx context.Context, arg ...any)   { z.sugar.Info(arg...) }
func (z *zapLogger) Warn(ctx context.Context, arg ...any)   { z.sugar.Warn(arg...) }
func (z *zapLogger) Error(ctx context.Context, arg ...any)  { z.sugar.Error(arg...) }
func (z *zapLogger) Fatal(ctx context.Context, arg ...any)  { z.sugar.Fatal(arg...) }
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) Panic(ctx context.Context, arg ...any)  { z.sugar.Panic(arg...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
