package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eugenenazirov/fib-bench/internal/storage"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, 99999, "+Inf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", buf.String())
	}
	if lines[0] != "fib_iter( 99999 ) => " {
		t.Fatalf("unexpected label line %q", lines[0])
	}
	if lines[1] != "+Inf" {
		t.Fatalf("unexpected value line %q", lines[1])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteResultPropagatesWriteError(t *testing.T) {
	if err := WriteResult(failingWriter{}, 1, "1"); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestWriteSummary(t *testing.T) {
	store := storage.NewMemoryStorage()
	for i, d := range []time.Duration{2 * time.Millisecond, 4 * time.Millisecond} {
		if err := store.AddSample(storage.Sample{Round: i + 1, Count: 20, Duration: d, Value: "6765"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var buf bytes.Buffer
	WriteSummary(&buf, "iterative/float64", store.Stats(), store.Samples())

	out := buf.String()
	for _, want := range []string{"Round", "iterative/float64", "2ms", "4ms", "2 rounds", "mean 3ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected summary to contain %q, got:\n%s", want, out)
		}
	}
}
