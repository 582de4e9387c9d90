// Package version resolves the tool's version tag.
package version

import (
	"os/exec"
	"strings"

	"svut/pkg/logging"
)

const subsystem = "version"

// FallbackTag is reported when no tag can be resolved. Failure to resolve
// is a warning, never an error.
const FallbackTag = "v0.0.0"

// For mocking in tests
var gitDescribe = func(repoRoot string) ([]byte, error) {
	// git -C avoids mutating the process working directory
	return exec.Command("git", "-C", repoRoot, "describe", "--tags", "--abbrev=0").Output()
}

// ResolveTag returns the latest git tag of the repository at repoRoot,
// falling back to FallbackTag when the lookup fails (not a git checkout,
// no tags, git missing).
func ResolveTag(repoRoot string) string {
	out, err := gitDescribe(repoRoot)
	if err != nil {
		logging.Warn(subsystem, "Can't get last git tag. Will return %s", FallbackTag)
		return FallbackTag
	}

	tag := strings.TrimSpace(string(out))
	if tag == "" {
		return FallbackTag
	}
	return tag
}
