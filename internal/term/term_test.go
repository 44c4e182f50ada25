package term

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestPrintf(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Printf("hello %s\n", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("output = %q, want %q", got, "hello world\n")
	}
}

func TestPrintln(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Println("hello", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("output = %q, want %q", got, "hello world\n")
	}
}

func TestSilentSuppressesStdout(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetSilent(true)

	Printf("hidden\n")
	Println("hidden")

	if buf.Len() != 0 {
		t.Errorf("silent mode should suppress stdout, got: %q", buf.String())
	}
}

func TestWarnNotSilenced(t *testing.T) {
	defer Reset()

	var errBuf bytes.Buffer
	SetErrOutput(&errBuf)
	SetSilent(true)

	Warn("disk %s", "full")

	got := errBuf.String()
	if !strings.Contains(got, "Warning: disk full") {
		t.Errorf("expected warning despite silent mode, got: %q", got)
	}
}

func TestErrorPrefix(t *testing.T) {
	defer Reset()

	var errBuf bytes.Buffer
	SetErrOutput(&errBuf)

	Error("boom")

	if got := errBuf.String(); got != "Error: boom\n" {
		t.Errorf("output = %q, want %q", got, "Error: boom\n")
	}
}

func TestStdoutDiscardsWhenSilent(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if Stdout() != &buf {
		t.Error("Stdout() should return the configured writer")
	}

	SetSilent(true)
	if Stdout() != io.Discard {
		t.Error("Stdout() should return io.Discard in silent mode")
	}
}
