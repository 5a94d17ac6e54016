// Package output builds termenv outputs for log rendering.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile picks the profile for log output.
// NO_COLOR and TERM=dumb force plain text.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// New returns a termenv.Output on w. A nil writer selects stderr.
// Writers that are not terminals, such as redirected stderr, get plain text.
// Options given here override the selected profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = ColorProfile()
	}

	defaults := []termenv.OutputOption{
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	}
	return termenv.NewOutput(w, append(defaults, opts...)...)
}
