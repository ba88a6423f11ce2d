package logging

import (
	"strings"

	"github.com/pkg/errors"
)

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerText: console encoder without colors.
//   - LoggerJSON: JSON encoder.
//   - LoggerPretty: console encoder, colored when the output is a terminal.
type LoggerType int

const (
	LoggerText LoggerType = iota
	LoggerJSON
	LoggerPretty
)

var loggerTypeNames = map[LoggerType]string{
	LoggerText:   "text",
	LoggerJSON:   "json",
	LoggerPretty: "pretty",
}

func (t LoggerType) String() string {
	if s, ok := loggerTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for k, v := range loggerTypeNames {
		if v == s {
			*t = k
			return nil
		}
	}
	return errors.Errorf("unknown logger type %q", string(text))
}
