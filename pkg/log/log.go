package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

var (
	configureOnce sync.Once

	defaultOnce sync.Once
	defaultLog  logr.Logger
)

// configure sets the zerolog and zerologr package settings. They are
// globals, so they are written once and only read afterwards.
func configure() {
	configureOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerologr.NameFieldName = "logger"
		zerologr.NameSeparator = "/"
	})
}

// New returns a zerolog logger writing to a console writer on stderr, or
// plain JSON on stderr when running inside Kubernetes.
func New() *zerolog.Logger {
	var output io.Writer
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}
	return NewWithWriter(output)
}

// NewWithWriter returns a timestamped zerolog logger writing to w.
func NewWithWriter(w io.Writer) *zerolog.Logger {
	configure()

	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}

// Logr bridges a zerolog logger into logr. Verbosity v maps to zerolog's
// debug level and below.
func Logr(zl *zerolog.Logger, name string) logr.Logger {
	configure()
	return zerologr.New(zl).WithName(name)
}

// Default is the logr logger used by the library when none is configured.
// It is built on first use and shared afterwards.
func Default() logr.Logger {
	defaultOnce.Do(func() {
		zl := New().Level(zerolog.InfoLevel)
		defaultLog = Logr(&zl, "toolbelt")
	})
	return defaultLog
}
