// Package modkit carries the shared dependency bundle and build plumbing
// every API module is assembled from.
package modkit

import (
	"leadrouter/internal/modkit/repokit"
	"leadrouter/internal/platform/config"
	"leadrouter/internal/platform/logger"
	"leadrouter/internal/platform/store"
)

// Deps is the dependency bundle handed to each module constructor.
// Plain wiring; PG and CH stay nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// ZeroOK reports that a zero Deps is usable in tests; callers still
// nil-check the optional stores
func (d Deps) ZeroOK() bool { return true }
