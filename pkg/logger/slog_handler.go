package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dusted-go/logging/prettylog"
)

// Log formats accepted by New.
const (
	FormatPretty = "pretty"
	FormatSimple = "simple"
	FormatText   = "text"
	FormatJSON   = "json"
)

// Formats lists the accepted log formats.
var Formats = []string{FormatPretty, FormatSimple, FormatText, FormatJSON}

type SimpleHandler struct {
	opts  Options
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

type Options struct {
	Level slog.Leveler
}

// NewRootLog is the handler used before flags are parsed.
func NewRootLog(logOpts slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &logOpts)
}

// New returns a handler for the given format writing to out. Benchmark
// tables own stdout, so callers normally pass os.Stderr.
func New(format string, out io.Writer, logOpts slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case FormatPretty, "":
		return NewPrettyLog(out, logOpts), nil
	case FormatSimple:
		return NewSimpleLog(out, logOpts.Level), nil
	case FormatText:
		return slog.NewTextHandler(out, &logOpts), nil
	case FormatJSON:
		return slog.NewJSONHandler(out, &logOpts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func NewSimpleLog(out io.Writer, level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	h := &SimpleHandler{out: out, mu: &sync.Mutex{}}
	h.opts.Level = level
	return h
}

func NewPrettyLog(out io.Writer, logOpts slog.HandlerOptions) slog.Handler {
	return prettylog.New(&logOpts, prettylog.WithDestinationWriter(out))
}

func (h *SimpleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *SimpleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h2.group != "" {
		name = h2.group + "." + name
	}
	h2.group = name
	return &h2
}

func (h *SimpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr(nil), h.attrs...), h.qualify(attrs)...)
	return &h2
}

func (h *SimpleHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, slog.Attr{Key: h.group + "." + a.Key, Value: a.Value})
	}
	return out
}

func (h *SimpleHandler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)
	buf = fmt.Appendf(buf, "%s ", r.Message)
	for _, a := range h.attrs {
		buf = h.appendAttr(buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		buf = h.appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *SimpleHandler) appendAttr(buf []byte, a slog.Attr) []byte {
	// Resolve the Attr's value before doing anything else.
	a.Value = a.Value.Resolve()
	// Ignore empty Attrs.
	if a.Equal(slog.Attr{}) {
		return buf
	}
	switch a.Value.Kind() {
	case slog.KindString:
		// Quote string values, to make them easy to parse.
		buf = fmt.Appendf(buf, "%s: %q\t", a.Key, a.Value.String())
	case slog.KindTime:
		// Write times in a standard way, without the monotonic time.
		buf = fmt.Appendf(buf, "%s: %s\t", a.Key, a.Value.Time().Format(time.RFC3339Nano))
	case slog.KindGroup:
		attrs := a.Value.Group()
		// Ignore empty groups.
		if len(attrs) == 0 {
			return buf
		}
		for _, ga := range attrs {
			if a.Key != "" {
				ga.Key = a.Key + "." + ga.Key
			}
			buf = h.appendAttr(buf, ga)
		}
	default:
		buf = fmt.Appendf(buf, "%s:%s\t", a.Key, a.Value)
	}
	return buf
}
