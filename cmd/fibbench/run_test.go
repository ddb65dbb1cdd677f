package main

import (
	"bytes"
	"strings"
	"testing"
)

func clearBenchEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FIB_COUNT", "FIB_REPRESENTATION", "FIB_ALGORITHM", "FIB_ROUNDS",
		"FIB_ROUNDS_PER_SECOND", "FIB_SUMMARY", "FIB_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestRunPrintsOnlyResultLinesOnStdout(t *testing.T) {
	clearBenchEnv(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--count", "20", "--log-level", "info"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if got, want := stdout.String(), "fib_iter( 20 ) => \n6765\n"; got != want {
		t.Fatalf("expected stdout %q, got %q", want, got)
	}
	if !strings.Contains(stderr.String(), `"msg":"benchmark started"`) {
		t.Fatalf("expected logs on stderr, got %q", stderr.String())
	}
}

func TestRunDefaultsMatchPlainBenchmark(t *testing.T) {
	clearBenchEnv(t)

	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if got, want := stdout.String(), "fib_iter( 99999 ) => \n+Inf\n"; got != want {
		t.Fatalf("expected stdout %q, got %q", want, got)
	}
	if !strings.Contains(stderr.String(), "exceeds exact range") {
		t.Fatalf("expected exact-range warning on stderr, got %q", stderr.String())
	}
}

func TestRunSummaryGoesToStderr(t *testing.T) {
	clearBenchEnv(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--count", "10", "--rounds", "2", "--summary"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if got, want := stdout.String(), "fib_iter( 10 ) => \n55\n"; got != want {
		t.Fatalf("expected stdout %q, got %q", want, got)
	}
	if !strings.Contains(stderr.String(), "2 rounds") {
		t.Fatalf("expected summary table on stderr, got %q", stderr.String())
	}
}

func TestRunIgnoresMalformedEnvLogLevel(t *testing.T) {
	clearBenchEnv(t)
	t.Setenv("FIB_LOG_LEVEL", "chatty")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--count", "10"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got, want := stdout.String(), "fib_iter( 10 ) => \n55\n"; got != want {
		t.Fatalf("expected stdout %q, got %q", want, got)
	}
}

func TestRunReturnsConfigErrors(t *testing.T) {
	clearBenchEnv(t)

	cases := [][]string{
		{"--log-level", "chatty"},
		{"--algorithm", "recursive"},
		{"--rounds", "0"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if err := run(args, &stdout, &stderr); err == nil {
			t.Fatalf("expected error for %v", args)
		}
		if stdout.Len() != 0 {
			t.Fatalf("expected no stdout for %v, got %q", args, stdout.String())
		}
	}
}
