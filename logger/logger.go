package logger

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler"
	"github.com/philipp01105/sblog/handler/filehandler"
)

var (
	// ErrUndefinedLevel is returned when a record has no level
	ErrUndefinedLevel = errors.New("log level is undefined")
	// ErrNoHandler is returned when the logger has no handler
	ErrNoHandler = errors.New("logger has no handler")
	// ErrNilError is returned by LogError when err is nil
	ErrNilError = errors.New("nil error passed to LogError")
	// ErrNilRecord is returned by LogRecord when record is nil
	ErrNilRecord = errors.New("nil record")
)

// defaultCallerSkip is the frame of the code that called a public log
// method, counted from core.GetCaller.
const defaultCallerSkip = 3

// Logger is a named logger bound to a single Handler
type Logger interface {
	// Name returns the logger name, used as the class name of its records
	Name() string

	// Handler returns the current handler
	Handler() handler.Handler
	// SetHandler replaces the handler
	SetHandler(h handler.Handler)

	// Filter returns the handler's filter; the logger has no filter of its own
	Filter() filter.Filter
	// SetFilter replaces the handler's filter
	SetFilter(f filter.Filter)

	// Level returns the threshold when the filter is a LevelFilter
	Level() (core.Level, bool)
	// SetLevel sets the threshold, installing a LevelFilter if needed
	SetLevel(level core.Level)
	// IsLoggable reports whether a message at level would pass the filter
	IsLoggable(level core.Level) bool

	// Log logs a message with optional parameters
	Log(level core.Level, msg string, params ...core.Param) error
	// LogError logs a message with the error as exception text
	LogError(level core.Level, msg string, err error) error
	// LogRecord dispatches a prepared record
	LogRecord(record *core.Record) error

	Severe(msg string, params ...core.Param) error
	Warning(msg string, params ...core.Param) error
	Info(msg string, params ...core.Param) error
	Config(msg string, params ...core.Param) error
	Fine(msg string, params ...core.Param) error

	// Close closes the handler
	Close() error
}

// namedLogger is the only Logger implementation
type namedLogger struct {
	name       string
	mu         sync.RWMutex
	handler    handler.Handler
	clock      core.Clock
	callerSkip int
}

// GetLogger creates a logger writing to filehandler.DefaultPath with a
// LevelFilter at All. Every call returns a new, independent logger.
func GetLogger(name string) Logger {
	return NewBuilder().WithName(name).Build()
}

// GetLoggerWithPath creates a logger writing to path with a LevelFilter
// at All. Every call returns a new, independent logger.
func GetLoggerWithPath(name, path string) Logger {
	return NewBuilder().WithName(name).WithPath(path).Build()
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name       string
	path       string
	handler    handler.Handler
	filter     filter.Filter
	level      core.Level
	clock      core.Clock
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		clock:      core.SystemClock{},
		callerSkip: defaultCallerSkip,
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithPath sets the file used when no handler is given
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// WithHandler sets the handler; WithPath is ignored when a handler is set
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithFilter sets the filter installed on the handler
func (b *Builder) WithFilter(f filter.Filter) *Builder {
	b.filter = f
	return b
}

// WithLevel sets the level threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock sets the timestamp source
func (b *Builder) WithClock(c core.Clock) *Builder {
	if c != nil {
		b.clock = c
	}
	return b
}

// WithCoarseClock switches to the cached coarse clock
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		b.clock = core.CoarseClock{}
	} else {
		b.clock = core.SystemClock{}
	}
	return b
}

// WithCallerSkip adds frames to skip when capturing the caller, for
// wrappers that call the logger on behalf of their own callers
func (b *Builder) WithCallerSkip(extra int) *Builder {
	b.callerSkip = defaultCallerSkip + extra
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() Logger {
	h := b.handler
	if h == nil {
		h = filehandler.NewFileHandler(filehandler.FileConfig{
			Path:   b.path,
			Filter: filter.NewDefaultLevelFilter(),
		})
	}
	if b.filter != nil {
		h.SetFilter(b.filter)
	}

	l := &namedLogger{
		name:       b.name,
		handler:    h,
		clock:      b.clock,
		callerSkip: b.callerSkip,
	}
	if b.level.IsDefined() {
		l.SetLevel(b.level)
	}
	return l
}

func (l *namedLogger) Name() string {
	return l.name
}

func (l *namedLogger) Handler() handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handler
}

func (l *namedLogger) SetHandler(h handler.Handler) {
	l.mu.Lock()
	l.handler = h
	l.mu.Unlock()
}

func (l *namedLogger) Filter() filter.Filter {
	h := l.Handler()
	if h == nil {
		return nil
	}
	return h.Filter()
}

func (l *namedLogger) SetFilter(f filter.Filter) {
	if h := l.Handler(); h != nil {
		h.SetFilter(f)
	}
}

func (l *namedLogger) Level() (core.Level, bool) {
	lf, ok := l.Filter().(*filter.LevelFilter)
	if !ok {
		return core.Level{}, false
	}
	return lf.Level(), true
}

func (l *namedLogger) SetLevel(level core.Level) {
	if lf, ok := l.Filter().(*filter.LevelFilter); ok {
		lf.SetLevel(level)
		return
	}
	l.SetFilter(filter.NewLevelFilter(level))
}

func (l *namedLogger) IsLoggable(level core.Level) bool {
	lf, ok := l.Filter().(*filter.LevelFilter)
	if !ok {
		return true
	}
	return lf.Allows(level)
}

func (l *namedLogger) Log(level core.Level, msg string, params ...core.Param) error {
	return l.log(level, msg, params, nil)
}

func (l *namedLogger) LogError(level core.Level, msg string, err error) error {
	if err == nil {
		return ErrNilError
	}
	return l.log(level, msg, nil, err)
}

func (l *namedLogger) LogRecord(record *core.Record) error {
	if record == nil {
		return ErrNilRecord
	}
	return l.dispatch(record)
}

func (l *namedLogger) Severe(msg string, params ...core.Param) error {
	return l.log(core.Severe, msg, params, nil)
}

func (l *namedLogger) Warning(msg string, params ...core.Param) error {
	return l.log(core.Warning, msg, params, nil)
}

func (l *namedLogger) Info(msg string, params ...core.Param) error {
	return l.log(core.Info, msg, params, nil)
}

func (l *namedLogger) Config(msg string, params ...core.Param) error {
	return l.log(core.Config, msg, params, nil)
}

func (l *namedLogger) Fine(msg string, params ...core.Param) error {
	return l.log(core.Fine, msg, params, nil)
}

func (l *namedLogger) Close() error {
	if h := l.Handler(); h != nil {
		return h.Close()
	}
	return nil
}

// log builds a record for the caller of the public method and dispatches it.
// Every public log method must call log directly so callerSkip stays valid.
func (l *namedLogger) log(level core.Level, msg string, params []core.Param, err error) error {
	if !level.IsDefined() {
		return ErrUndefinedLevel
	}

	// Level check optimization - exit before capturing the caller
	if lf, ok := l.Filter().(*filter.LevelFilter); ok && !lf.Allows(level) {
		return nil
	}

	record := &core.Record{
		ClassName: l.name,
		Message:   msg,
		Params:    params,
		Time:      l.clock.Now(),
		Level:     level,
	}
	if caller := core.GetCaller(l.callerSkip); caller.Defined {
		record.MethodName = caller.Method
		record.LineNumber = strconv.Itoa(caller.Line)
	}
	if err != nil {
		record.SetException(fmt.Sprintf("%+v", err))
	}

	return l.dispatch(record)
}

// dispatch runs the logger-stage filter and hands accepted records to
// the handler, which applies its own filter again.
func (l *namedLogger) dispatch(record *core.Record) error {
	if !record.Level.IsDefined() {
		return ErrUndefinedLevel
	}
	h := l.Handler()
	if h == nil {
		return ErrNoHandler
	}
	if f := h.Filter(); f != nil && !f.IsLoggable(record) {
		return nil
	}
	if err := h.Write(record); err != nil {
		return fmt.Errorf("logger %s: %w", l.name, err)
	}
	return nil
}
