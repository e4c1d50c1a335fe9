package formatter

import (
	"bytes"

	"github.com/philipp01105/sblog/core"
)

// TimestampLayout is the dd-MM-yyyy HH:mm:ss layout used by DefaultFormatter
const TimestampLayout = "02-01-2006 15:04:05"

const (
	paramsPrefix    = ". Parameters: { "
	paramsSuffix    = " }"
	exceptionPrefix = ". Failed with ERROR: "
)

// DefaultFormatter renders records as
//
//	[dd-MM-yyyy HH:mm:ss] LEVEL - ClassName(LineNumber):MethodName - Message[. Parameters: { k = v }][. Failed with ERROR: text]
type DefaultFormatter struct{}

// NewDefaultFormatter creates the default formatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// Format renders the record using its stored timestamp
func (f *DefaultFormatter) Format(record *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('[')
	buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), TimestampLayout))
	buf.WriteString("] ")
	buf.WriteString(record.Level.Name())
	buf.WriteString(" - ")
	buf.WriteString(record.ClassName)
	buf.WriteByte('(')
	buf.WriteString(record.LineNumber)
	buf.WriteString("):")
	buf.WriteString(record.MethodName)
	buf.WriteString(" - ")
	buf.WriteString(record.Message)
	writeParams(buf, record.Params)
	if text, ok := record.Exception(); ok {
		buf.WriteString(exceptionPrefix)
		buf.WriteString(text)
	}
	buf.WriteByte('\n')

	return buf.String()
}

// ParamsSuffix renders the parameters clause, or "" when there are none
func ParamsSuffix(params []core.Param) string {
	if len(params) == 0 {
		return ""
	}
	buf := getBuffer()
	defer putBuffer(buf)
	writeParams(buf, params)
	return buf.String()
}

// ExceptionSuffix renders the exception clause, or "" when the record has none
func ExceptionSuffix(record *core.Record) string {
	text, ok := record.Exception()
	if !ok {
		return ""
	}
	return exceptionPrefix + text
}

func writeParams(buf *bytes.Buffer, params []core.Param) {
	for i, p := range params {
		if i == 0 {
			buf.WriteString(paramsPrefix)
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name)
		buf.WriteString(" = ")
		buf.WriteString(p.Value)
	}
	if len(params) > 0 {
		buf.WriteString(paramsSuffix)
	}
}
