package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger fields
const (
	COMPONENT = "component"
	FORM      = "form"
	NUMBER    = "number"
	STATUS    = "status"
	SUBMITTER = "submitter"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Configure sets the global level and output. An unknown level falls back to info.
func Configure(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// NewComponentLogger returns a child of the global logger tagged with component={name}
func NewComponentLogger(name string) zerolog.Logger {
	return log.With().Str(COMPONENT, name).Logger()
}
