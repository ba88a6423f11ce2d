package logging

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

type Parameters struct {
	Level  zapcore.Level
	Type   LoggerType
	Filter string

	flagLogLevel   string
	flagLoggerType string
}

// Initialize adds logging command line parameters to the flag set.
func (p *Parameters) Initialize(fs *pflag.FlagSet) {
	fs.StringVar(&p.flagLogLevel, "log-level", "info",
		"Set the logging level. Supported values: debug, info, warn, error.")
	fs.StringVar(&p.flagLoggerType, "log-type", "pretty",
		"Set the logger output format. Supported types: text, json, pretty.")
	fs.StringVar(&p.Filter, "log-filter", "",
		"Space separated zapfilter rules, e.g. '*:* -debug:confirm'. Empty logs everything enabled by the level.")
}

// Parse parses the command line parameters for logging.
func (p *Parameters) Parse() error {
	if err := p.Level.UnmarshalText([]byte(p.flagLogLevel)); err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	if err := p.Type.UnmarshalText([]byte(p.flagLoggerType)); err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	return nil
}
