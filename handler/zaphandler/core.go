package zaphandler

import (
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler"
)

// Core is a zapcore.Core that turns zap entries into records and writes
// them through a Handler, so a *zap.Logger can log to an sblog sink.
type Core struct {
	handler handler.Handler
	name    string
	params  []core.Param
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a Core writing to h. name is the class name used for
// entries logged without a zap logger name.
func NewCore(h handler.Handler, name string) *Core {
	return &Core{handler: h, name: name}
}

// Enabled consults the handler's LevelFilter; other filters enable every level
func (c *Core) Enabled(lvl zapcore.Level) bool {
	lf, ok := c.handler.Filter().(*filter.LevelFilter)
	if !ok {
		return true
	}
	return lf.Allows(CoreLevel(lvl))
}

// With returns a Core that adds fields to every record
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	params := make([]core.Param, len(c.params), len(c.params)+len(fields))
	copy(params, c.params)
	return &Core{
		handler: c.handler,
		name:    c.name,
		params:  appendFields(params, fields),
	}
}

// Check adds the core to the checked entry when the level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and writes it through the handler
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	record := &core.Record{
		ClassName: c.name,
		Message:   ent.Message,
		Time:      ent.Time,
		Level:     CoreLevel(ent.Level),
	}
	if ent.LoggerName != "" {
		record.ClassName = ent.LoggerName
	}
	if ent.Caller.Defined {
		record.MethodName = core.ShortFuncName(ent.Caller.Function)
		record.LineNumber = strconv.Itoa(ent.Caller.Line)
	}
	if len(c.params) > 0 || len(fields) > 0 {
		record.Params = make([]core.Param, 0, len(c.params)+len(fields))
		record.Params = append(record.Params, c.params...)
		record.Params = appendFields(record.Params, fields)
	}
	if ent.Stack != "" {
		record.SetException(ent.Stack)
	}
	return c.handler.Write(record)
}

// Sync is a no-op; handlers do not buffer
func (c *Core) Sync() error {
	return nil
}

// appendFields renders zap fields into params in field order. Each field
// is encoded on its own so ordering survives the map encoder.
func appendFields(params []core.Param, fields []zapcore.Field) []core.Param {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		v, ok := enc.Fields[f.Key]
		if !ok {
			continue
		}
		params = append(params, core.NewParam(f.Key, v))
	}
	return params
}
