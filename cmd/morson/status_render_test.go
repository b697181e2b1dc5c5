package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine(statusWarn, "two runs dropped", false)
	if want := "[WARN] two runs dropped"; got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine(statusOK, "done", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestPrintStatusPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, statusInfo, "%d files", 3)
	if got := buf.String(); got != "[INFO] 3 files\n" {
		t.Fatalf("printStatus = %q", got)
	}
}
