package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects log output. A nil writer restores stderr.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON records and pretty terminal lines.
	SetJSON(enable bool)
	// SetVerbose enables debug records.
	SetVerbose(enable bool)
}
