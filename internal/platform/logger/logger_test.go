package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"  INFO  ", zerolog.InfoLevel},
		{"bogus", zerolog.DebugLevel},
		{"", zerolog.DebugLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInitAndRequestScopedChild(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Writer: &buf, Service: "leadrouter-test"})

	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("hello")

	out := buf.String()
	if out == "" {
		// Init is once-per-process; another test may have won the race.
		// Fall back to asserting the child logger is at least usable.
		C(ctx).Info().Msg("hello again")
		t.Skip("root logger already initialized by a previous test")
	}
	if !strings.Contains(out, "req-123") {
		t.Fatalf("expected request_id in output, got %q", out)
	}
}

func TestNamedEmptyFallsBackToRoot(t *testing.T) {
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}
}
