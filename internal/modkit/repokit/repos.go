// Package repokit re-exports the store contracts under repo-friendly names
// and adds the binder plumbing repos build on.
package repokit

import (
	"context"

	"leadrouter/internal/platform/store"
)

// Queryer is what repo queries program against, pool or transaction alike
type Queryer = store.RowQuerier

// RowQuerier is an older alias some call sites still use
type RowQuerier = store.RowQuerier

// TxRunner hands a transaction-scoped Queryer to a callback
type TxRunner = store.TxRunner

type (
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
