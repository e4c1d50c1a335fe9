// Package zaphandler connects sblog with go.uber.org/zap in both
// directions.
//
// Handler is an sblog handler whose sink is a *zap.Logger. Each record
// is rendered with the handler's formatter and logged as a single message
// at the matching zap level, so zap's encoders and outputs take over from
// the file.
//
// Core is a zapcore.Core backed by an sblog handler. Wrapping a handler
// in a Core lets code written against zap log to an sblog file:
//
//	h := filehandler.NewFileHandler(filehandler.FileConfig{Path: "Logs/app.txt"})
//	log := zap.New(zaphandler.NewCore(h, "app"), zap.AddCaller())
//	log.Warn("disk almost full", zap.Int("percent", 91))
//
// zap fields become record parameters rendered at write time, and a
// stack attached by zap becomes the record's exception text.
package zaphandler
