package domain

import (
	"fmt"
	"net/http"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidPageName is returned when a command name cannot be turned into a page path.
	ErrInvalidPageName = zerr.New("invalid page name")

	// ErrInvalidPlatform is returned when a platform override is not one of the supported tags.
	ErrInvalidPlatform = zerr.New("invalid platform, expected 'osx' or 'linux'")

	// ErrInvalidBaseURL is returned when the configured page host is not an absolute http(s) URL.
	ErrInvalidBaseURL = zerr.New("invalid base url, expected an absolute http or https url")

	// ErrInvalidTimeout is returned when the configured request timeout cannot be parsed or is negative.
	ErrInvalidTimeout = zerr.New("invalid timeout, expected a non-negative duration")

	// ErrInvalidLogFormat is returned when --log-format names an unknown format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigDirUnavailable is returned when the user config directory cannot be determined.
	ErrConfigDirUnavailable = zerr.New("failed to determine user config directory")
)

// RequestError reports that the HTTP call for a page could not complete.
type RequestError struct {
	Command  string
	Platform Platform
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error fetching description for `%s`: %v", e.Command, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ResponseError reports that the page host answered with a non-success status.
type ResponseError struct {
	Command    string
	Platform   Platform
	StatusCode int
}

func (e *ResponseError) Error() string {
	status := fmt.Sprintf("%d", e.StatusCode)
	if text := http.StatusText(e.StatusCode); text != "" {
		status += " " + text
	}
	return fmt.Sprintf("could not fetch description for command `%s`: %s", e.Command, status)
}

// StreamOp names the side of a copy that failed.
type StreamOp string

const (
	// StreamOpRead marks a failure while reading the page body.
	StreamOpRead StreamOp = "read"
	// StreamOpWrite marks a failure while writing to the destination.
	StreamOpWrite StreamOp = "write"
)

// StreamError reports a read or write failure while copying a page.
type StreamError struct {
	Op  StreamOp
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("couldn't %s stream: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
