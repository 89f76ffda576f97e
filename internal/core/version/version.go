// Package version reports the build stamped into a binary
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X 'personalab/internal/core/version.version=v0.1.0'
// -X 'personalab/internal/core/version.commit=abcd' -X 'personalab/internal/core/version.date=2025-09-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Version returns the stamped version, "dev" for local builds
func Version() string { return version }

// Commit returns the stamped commit, "none" for local builds
func Commit() string { return commit }
