package logger

import (
	"errors"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/rs/zerolog"
)

// Reporter sends conditions recovered by the course store to a zerolog logger.
// Each event carries a "kind" field naming the error type when it is one of the dberr types.
type Reporter struct {
	log zerolog.Logger
}

// NewReporter returns a Reporter logging through log.
func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{log: log}
}

// Warn logs err at warn level.
func (R *Reporter) Warn(err error) {
	R.log.Warn().Str("kind", kindOf(err)).Err(err).Msg("course store warning")
}

// Error logs err at error level.
func (R *Reporter) Error(err error) {
	R.log.Error().Str("kind", kindOf(err)).Err(err).Msg("course store error")
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, dberr.NoRecordFound{}):
		return "not_found"
	case errors.Is(err, dberr.MalformedInput{}):
		return "malformed_input"
	case errors.Is(err, dberr.SourceMissing{}):
		return "source_missing"
	case errors.Is(err, dberr.UninitializedStructure{}):
		return "uninitialized"
	default:
		return "internal"
	}
}
