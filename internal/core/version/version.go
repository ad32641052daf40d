// Package version exposes the build metadata stamped into the binary.
package version

// BuildInfo is the payload served by the version endpoint.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the stamped build metadata. Release builds overwrite the
// package variables with -ldflags, e.g.
// -X 'leadrouter/internal/core/version.version=v0.0.1'
func Info() BuildInfo {
	return BuildInfo{
		Service: "leadrouter-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
