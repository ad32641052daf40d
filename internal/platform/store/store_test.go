package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func mustOpen(t *testing.T, cfg Config, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s == nil {
		t.Fatal("Open returned a nil store")
	}
	t.Cleanup(func() {
		if err := s.Close(context.Background()); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
	return s
}

func TestOpen_CHOnly(t *testing.T) {
	t.Parallel()

	// clickhouse-go dials lazily, Open succeeds without a live server
	s := mustOpen(t, Config{
		CH: CHConfig{Enabled: true, URL: "clickhouse://localhost:9000"},
	})

	if s.CH == nil {
		t.Fatal("CH seam not set")
	}
	if s.PG != nil {
		t.Fatalf("PG seam set without being enabled: %T", s.PG)
	}
}

func TestOpen_WithLoggerOption(t *testing.T) {
	t.Parallel()

	var zl zerolog.Logger // zero value is a valid no-op logger
	mustOpen(t, Config{}, WithLogger(zl))
}

func TestOpen_BadPGURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"pg alone", Config{
			PG: PGConfig{Enabled: true, URL: "://bad", MaxConns: 1},
		}},
		// PG fails first; a healthy CH config must not mask the error
		{"pg plus ch", Config{
			PG: PGConfig{Enabled: true, URL: "://bad"},
			CH: CHConfig{Enabled: true, URL: "clickhouse://localhost:9000"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(context.Background(), tc.cfg)
			if err == nil {
				t.Fatalf("Open accepted a bad PG URL, store=%#v", s)
			}
			if s != nil {
				t.Fatalf("store must be nil on error, got %#v", s)
			}
		})
	}
}
