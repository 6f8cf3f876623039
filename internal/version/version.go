// Package version carries the staffdeck build stamp, injected at link time:
//
//	go build -ldflags "-X staffdeck/internal/version.Version=v1.2.3"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders the stamp the way --version and the startup log print it.
func String() string {
	base := Version
	if Commit != "" {
		base += fmt.Sprintf(" (%s)", Commit)
	}
	if Date != "" {
		base += fmt.Sprintf(" %s", Date)
	}
	return base
}
