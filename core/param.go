package core

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// nullValue is how an absent value is rendered
const nullValue = "null"

// Param is a named message parameter. Value is rendered when the Param
// is created, so later changes to the source value are not reflected.
type Param struct {
	Name  string
	Value string
}

// NewParam creates a parameter, stringifying v immediately
func NewParam(name string, v any) Param {
	return Param{Name: name, Value: render(v)}
}

// String creates a string parameter
func String(name, val string) Param {
	return Param{Name: name, Value: val}
}

// Int creates an int parameter
func Int(name string, val int) Param {
	return Param{Name: name, Value: strconv.Itoa(val)}
}

// Int64 creates an int64 parameter
func Int64(name string, val int64) Param {
	return Param{Name: name, Value: strconv.FormatInt(val, 10)}
}

// Float64 creates a float64 parameter
func Float64(name string, val float64) Param {
	return Param{Name: name, Value: strconv.FormatFloat(val, 'f', -1, 64)}
}

// Bool creates a bool parameter
func Bool(name string, val bool) Param {
	return Param{Name: name, Value: strconv.FormatBool(val)}
}

// Time creates a time parameter in RFC3339
func Time(name string, val time.Time) Param {
	return Param{Name: name, Value: val.Format(time.RFC3339)}
}

// Duration creates a duration parameter
func Duration(name string, val time.Duration) Param {
	return Param{Name: name, Value: val.String()}
}

// Err creates an "error" parameter; a nil error renders as null
func Err(err error) Param {
	if err == nil {
		return Param{Name: "error", Value: nullValue}
	}
	return Param{Name: "error", Value: err.Error()}
}

// Any is an alias of NewParam kept for symmetry with the typed constructors
func Any(name string, val any) Param {
	return NewParam(name, val)
}

func render(v any) string {
	if isNil(v) {
		return nullValue
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
