package config

import "fmt"

// ModuleName is the name of this service as shown in CLI help and logs.
const ModuleName = "go-smart-account"

// Build arguments, set via -ldflags at build time.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<module> @ <commit> (<build date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
