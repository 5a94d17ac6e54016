package domain

import (
	"net/url"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// PageRef identifies one page on the page host.
type PageRef struct {
	Name     string
	Platform Platform
}

// Path returns the location of the page relative to the host base URL.
func (p PageRef) Path() string {
	return "pages/" + url.PathEscape(string(p.Platform)) + "/" + url.PathEscape(p.Name) + ".md"
}

// NewPageName validates a command name given on the command line.
func NewPageName(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidPageName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", zerr.With(ErrInvalidPageName, "page", name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", zerr.With(ErrInvalidPageName, "page", name)
	}
	return name, nil
}
