package store

import (
	"context"
	"fmt"
	"time"

	chx "leadrouter/internal/platform/store/ch"
	"leadrouter/internal/platform/store/pg"
)

// openPG opens the pool, waits for it to answer, then publishes the sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	if err := waitForPG(ctx, p); err != nil {
		p.Close()
		return nil, err
	}

	a := newPGAdapter(p)
	s.PG = a
	return a, nil
}

// waitForPG pings the raw pool with capped exponential backoff so boot
// survives a database that is still starting. Pinging the pool directly
// keeps retry noise out of the SQL trace
func waitForPG(ctx context.Context, p *pg.PG) error {
	const (
		maxAttempts = 20
		pingTimeout = 3 * time.Second
		ceiling     = 2 * time.Second
	)

	var lastErr error
	backoff := 150 * time.Millisecond
	for attempt := 0; attempt < maxAttempts; attempt++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > ceiling {
			backoff = ceiling
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
