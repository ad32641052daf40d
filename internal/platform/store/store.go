// Package store fronts the optional storage backends behind one facade.
package store

import (
	"context"
	"errors"
	"fmt"

	"leadrouter/internal/platform/logger"
)

// Store holds whichever backends were enabled at Open time. The zero value
// is usable and does nothing.
type Store struct {
	// Log is handed to subclients; the zero logger is a valid no-op.
	Log logger.Logger

	// PG is the postgres seam, nil unless enabled.
	PG TxRunner

	// CH is the clickhouse seam, nil unless enabled.
	CH Clickhouse
}

// Row is the scan contract for a single result row.
type Row interface {
	Scan(dest ...any) error
}

// Rows is the iteration contract for a result set.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag describes the outcome of a write statement.
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repositories program against.
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs a function inside a transaction-scoped RowQuerier.
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the narrow seam for columnar inserts and reads.
type Clickhouse interface {
	Insert(ctx context.Context, table string, cols []string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger marks seams that can report readiness.
type Pinger interface{ Ping(context.Context) error }

// Open builds a Store from cfg. Backends left disabled stay nil, and the
// first backend that fails to open aborts the whole call.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// normalize a zero logger so subclients never nil-check
	s.Log = s.Log.With().Logger()

	var err error
	if cfg.PG.Enabled {
		if s.PG, err = openPG(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	if cfg.CH.Enabled {
		if s.CH, err = openCH(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func pingSeam(ctx context.Context, name string, seam any, errs *[]error) {
	p, ok := seam.(Pinger)
	if !ok {
		return
	}
	if err := p.Ping(ctx); err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", name, err))
	}
}

// Guard pings every configured seam that supports it.
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}

	var errs []error
	if s.PG != nil {
		pingSeam(ctx, "pg", s.PG, &errs)
	}
	if s.CH != nil {
		pingSeam(ctx, "ch", s.CH, &errs)
	}
	return errors.Join(errs...)
}

// Close shuts down the initialized backends; nil seams are skipped.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	closers := []any{s.CH, s.PG}
	for _, seam := range closers {
		c, ok := seam.(interface{ Close() error })
		if !ok {
			continue
		}
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
