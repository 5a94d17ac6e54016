package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/tldr/internal/ui/output"
	"go.trai.ch/tldr/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one colored line per record:
// an optional level icon, the message, then flattened key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// preformatted holds attributes added through WithAttrs, already rendered
	// with the group path that was open when they were added.
	preformatted []string
	group        string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// The level from opts is consulted on every record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	badge := levelBadge(r.Level)

	var line strings.Builder
	if badge.Icon != "" {
		line.WriteString(badge.Icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	for _, part := range h.preformatted {
		line.WriteByte(' ')
		line.WriteString(part)
	}
	r.Attrs(func(attr slog.Attr) bool {
		for _, part := range appendAttr(nil, h.group, attr) {
			line.WriteByte(' ')
			line.WriteString(part)
		}
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(badge.Color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.preformatted = appendAttr(next.preformatted, h.group, attr)
	}
	return next
}

// WithGroup returns a new Handler that qualifies later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := h.clone()
	next.group = joinKey(h.group, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:          h.out,
		level:        h.level,
		preformatted: append([]string(nil), h.preformatted...),
		group:        h.group,
	}
}

func levelBadge(level slog.Level) style.Badge {
	switch {
	case level >= slog.LevelError:
		return style.ErrorBadge
	case level >= slog.LevelWarn:
		return style.WarnBadge
	case level >= slog.LevelInfo:
		return style.InfoBadge
	default:
		return style.DebugBadge
	}
}

// appendAttr flattens attr into key=value pairs, recursing into groups.
func appendAttr(parts []string, group string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	key := joinKey(group, attr.Key)
	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, key, member)
		}
		return parts
	}

	return append(parts, key+"="+attr.Value.String())
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}
