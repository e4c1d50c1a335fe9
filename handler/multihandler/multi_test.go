package multihandler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler/consolehandler"
	"github.com/philipp01105/sblog/handler/filehandler"
)

func testRecord(level core.Level, msg string) *core.Record {
	return &core.Record{
		ClassName:  "Multi",
		MethodName: "Run",
		LineNumber: "9",
		Message:    msg,
		Time:       time.Now(),
		Level:      level,
	}
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	h1 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf1})
	h2 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf2})

	multi := NewMultiHandler(h1, h2)
	defer multi.Close()

	if err := multi.Write(testRecord(core.Info, "multi test")); err != nil {
		t.Errorf("Write() error = %v", err)
	}

	if !strings.Contains(buf1.String(), "multi test") {
		t.Error("First handler did not receive message")
	}
	if !strings.Contains(buf2.String(), "multi test") {
		t.Error("Second handler did not receive message")
	}
}

func TestMultiHandler_ChildFilters(t *testing.T) {
	var everything, severeOnly bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.txt")

	multi := NewMultiHandler(
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &everything}),
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer: &severeOnly,
			Filter: filter.NewLevelFilter(core.Severe),
		}),
		filehandler.NewFileHandler(filehandler.FileConfig{Path: path}),
	)

	if err := multi.Write(testRecord(core.Warning, "careful")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !strings.Contains(everything.String(), "careful") {
		t.Error("unfiltered child missed the record")
	}
	if severeOnly.Len() != 0 {
		t.Error("severe-only child accepted a warning")
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "careful") {
		t.Errorf("file child missed the record: %q, %v", data, err)
	}
}

func TestMultiHandler_OwnFilter(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf}))
	multi.SetFilter(filter.NewLevelFilter(core.Off))

	if err := multi.Write(testRecord(core.Severe, "silenced")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("Off filter on the multi-handler should stop fan-out")
	}
}

type failingWriter struct{ msg string }

func (w failingWriter) Write([]byte) (int, error) { return 0, errors.New(w.msg) }

func TestMultiHandler_AggregatesErrors(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiHandler(
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: failingWriter{"first"}}),
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf}),
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: failingWriter{"second"}}),
	)

	err := multi.Write(testRecord(core.Info, "partial"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
	if !strings.Contains(buf.String(), "partial") {
		t.Error("healthy child should still receive the record")
	}
	if got := len(multi.Handlers()); got != 3 {
		t.Errorf("Handlers() len = %d, want 3", got)
	}
}
