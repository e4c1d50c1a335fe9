package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler"
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// This allows sblog to be used as a backend for log/slog.
type SlogHandler struct {
	handler handler.Handler
	name    string
	attrs   []core.Param
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. name becomes the class name of every record.
func NewSlogHandler(h handler.Handler, name string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		name:    name,
	}
}

// Enabled reports whether the wrapped handler's level threshold admits
// the level. Handlers without a LevelFilter are always enabled.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lf, ok := s.handler.Filter().(*filter.LevelFilter)
	if !ok {
		return true
	}
	return lf.Allows(SlogLevel(level))
}

// Handle converts the slog.Record to a Record and writes it through the
// wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	record := &core.Record{
		ClassName: s.name,
		Message:   r.Message,
		Time:      r.Time,
		Level:     SlogLevel(r.Level),
	}

	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		record.MethodName = core.ShortFuncName(frame.Function)
		record.LineNumber = strconv.Itoa(frame.Line)
	}

	if len(s.attrs) > 0 || r.NumAttrs() > 0 {
		record.Params = make([]core.Param, 0, len(s.attrs)+r.NumAttrs())
		record.Params = append(record.Params, s.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			record.Params = appendAttr(record.Params, s.group, a)
			return true
		})
	}

	return s.handler.Write(record)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Param, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Param, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// SlogLevel converts a slog.Level to a core.Level.
func SlogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.Severe
	case level >= slog.LevelWarn:
		return core.Warning
	case level >= slog.LevelInfo:
		return core.Info
	default:
		return core.Fine
	}
}

// appendAttr renders a slog.Attr into params, flattening groups with a
// dotted prefix.
func appendAttr(params []core.Param, group string, a slog.Attr) []core.Param {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return params
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			params = appendAttr(params, key, ga)
		}
		return params
	}

	if a.Value.Kind() == slog.KindAny {
		return append(params, core.NewParam(key, a.Value.Any()))
	}
	return append(params, core.String(key, a.Value.String()))
}
