// Package version defines Lumen CLI version information and build
// metadata.
package version

import (
	"fmt"
	"strings"
)

// CommitHash stores the git commit hash of this build.
//
// This should be set using -ldflags during compilation.
var CommitHash string

const (
	appMajor = 0
	appMinor = 3
	appPatch = 0
)

// Version returns the semantic version of the CLI.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
}

// RichVersion returns the version with build metadata when available.
func RichVersion() string {
	hash := strings.TrimSpace(CommitHash)
	if hash == "" {
		return Version()
	}
	return fmt.Sprintf("%s commit_hash=%s", Version(), hash)
}
