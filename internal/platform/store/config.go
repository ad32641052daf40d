package store

import "time"

// Config collects the settings for every backend the store can open.
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig covers postgres connectivity plus query tracing knobs.
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// startup wait behavior
	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 5s
}

// CHConfig covers clickhouse connectivity.
type CHConfig struct {
	Enabled bool
	URL     string
}
