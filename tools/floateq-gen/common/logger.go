package common

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ------------------------------------------------------------
// If the verbosity at the call site is less than or equal to
// level requested, the log will be enabled. Higher callsite
// verbosity values are less likely to be output.
//
// if (2 <= verbosity) { log-is-enabled }
// ------------------------------------------------------------

type LogWriter struct {
	verbosity int
	logger    zerolog.Logger
}

var logWriter *LogWriter

// NewLogWriter sets up the process-wide LogWriter. Logs go to stderr
// unless logfileName names a file that can be created.
func NewLogWriter(logfileName string, vLevel int) *LogWriter {
	var erx error
	var fp *os.File

	var wrx io.Writer = os.Stderr
	logfilePath := strings.TrimSpace(logfileName)
	if logfilePath != "" {
		if fp, erx = os.Create(logfilePath); erx == nil {
			wrx = fp
		}
	}

	logWriter = NewLogWriterTo(wrx, vLevel)

	// Advise if the requested logfile was not created
	if erx != nil {
		logWriter.Warnf("Unable to Create/Open requested logfile: %q", logfilePath)
	}
	return logWriter
}

// NewLogWriterTo builds a LogWriter on w without touching the process-wide one.
func NewLogWriterTo(w io.Writer, vLevel int) *LogWriter {
	level := zerolog.InfoLevel
	if vLevel > 1 {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Str("tool", "floateq-gen").
		Logger()
	return &LogWriter{verbosity: vLevel, logger: logger}
}

func GetLogWriter() *LogWriter {
	if logWriter == nil {
		return NewLogWriter("", 0)
	}
	return logWriter
}

func (lW *LogWriter) IsVerbose() bool {
	return lW.verbosity > 0
}

func (lW *LogWriter) VerboseLevel(v int) bool {
	return v <= lW.verbosity
}

func (lW *LogWriter) Printf(format string, v ...any) {
	lW.logger.Info().Msgf(format, v...)
}

func (lW *LogWriter) Debugf(format string, v ...any) {
	lW.logger.Debug().Msgf(format, v...)
}

func (lW *LogWriter) Warnf(format string, v ...any) {
	lW.logger.Warn().Msgf(format, v...)
}

func (lW *LogWriter) Errorf(err error, format string, v ...any) {
	lW.logger.Error().Err(err).Msgf(format, v...)
}
