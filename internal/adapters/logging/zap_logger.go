package logging

import (
	"patchverk/internal/cli/output"
	"patchverk/internal/core/domain"
	"patchverk/internal/ports"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"
)

var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger implements ports.Logger with a sugared zap logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// ProvideZapLogger builds a console logger writing to stderr and routes client-go's klog output through it.
func ProvideZapLogger(overrides domain.ConfigOverrides) (*ZapLogger, error) {
	zapLog, err := newZapConfig(overrides.Verbose, output.ColorsEnabled()).Build()
	if err != nil {
		return nil, err
	}

	klog.SetLogger(zapr.NewLogger(zapLog.Named("client-go")))

	return NewZapLogger(zapLog), nil
}

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

func newZapConfig(verbose bool, colors bool) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	if colors {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}

func (l *ZapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append([]interface{}{zap.Error(err)}, keysAndValues...)...)
}
