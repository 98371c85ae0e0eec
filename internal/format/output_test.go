package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": 1}, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "{\"data\":1}\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestWritePretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": 1}, true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n  \"data\": 1\n") {
		t.Fatalf("pretty output unexpected: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output must end with a newline")
	}
}
