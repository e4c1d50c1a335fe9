package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Method    string
	Defined   bool
}

// GetCaller retrieves caller information. skip follows runtime.Caller
// with GetCaller itself counted as frame 0.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Method:    ShortFuncName(funcName),
		Defined:   true,
	}
}

// ShortFuncName reduces a runtime function name to its last identifier:
// "example.com/pkg.(*T).Method.func1" becomes "func1" and
// "example.com/pkg.Run" becomes "Run".
func ShortFuncName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
