// Package build carries build metadata injected at link time.
package build

// Info is populated from ldflags in cmd/dimmer and threaded to the CLI.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL is the project's canonical repository address.
func RepoURL() string {
	return "https://github.com/bnema/dimmer"
}

// Contributors lists the project authors shown by the version command.
func Contributors() []string {
	return []string{"bnema"}
}
