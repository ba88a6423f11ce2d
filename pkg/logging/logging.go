package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// SetupLogger builds the process logger writing to stdout and installs it as the zap global.
func SetupLogger(params Parameters) (*zap.Logger, error) {
	logger, err := NewLogger(params, os.Stdout)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// NewLogger builds a logger writing to w.
func NewLogger(params Parameters, w zapcore.WriteSyncer) (*zap.Logger, error) {
	core := zapcore.NewCore(newEncoder(params.Type, w), zapcore.Lock(w), zap.NewAtomicLevelAt(params.Level))
	if params.Filter != "" {
		filter, err := zapfilter.ParseRules(params.Filter)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log filter %q", params.Filter)
		}
		core = zapfilter.NewFilteringCore(core, filter)
	}
	return zap.New(core, zap.AddStacktrace(zapcore.DPanicLevel)), nil
}

func newEncoder(loggerType LoggerType, w zapcore.WriteSyncer) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	switch loggerType {
	case LoggerJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case LoggerPretty:
		if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec)
	default:
		return zapcore.NewConsoleEncoder(ec)
	}
}
