package app

import "fmt"

// Version, Commit, and BuildTime are injected via ldflags at release build
// time. Example:
//
//	go build -ldflags "-X github.com/heartmarshall/myhealth-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string used in startup logs. Development
// builds collapse to just the version.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
