// Package version resolves the application version from source control,
// falling back to a baked-in version when git is unavailable (Docker
// images, release tarballs).
package version

import (
	"os/exec"
	"strings"
)

// fallbackVersion is used when git metadata cannot be consulted.
const fallbackVersion = "1.5.4"

// Version can be overridden at build time:
//
//	go build -ldflags "-X boxarr/internal/version.Version=1.6.0"
var Version = ""

// Get returns the current version string, in the form "x.y.z" or
// "x.y.z-dev" when the working tree is not on a tagged commit.
func Get() string {
	if Version != "" {
		return Version
	}
	if v := fromGit(); v != "" {
		return v
	}
	return fallbackVersion
}

// fromGit derives the version from `git describe`. Returns "" when git
// is not available or the tree is not a repository.
func fromGit() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return ""
	}
	describe := strings.TrimSpace(string(out))
	if describe == "" {
		return ""
	}

	onTag := exec.Command("git", "describe", "--exact-match", "--tags").Run() == nil
	return normalizeDescribe(describe, onTag)
}

// normalizeDescribe cleans a `git describe` result: the leading "v" is
// stripped, and when the commit is not exactly on a tag the version
// collapses to "<base>-dev" (plus "-dirty" when the tree is modified).
// A bare commit hash, with no tag to anchor it, maps to the fallback
// with a -dev suffix.
func normalizeDescribe(describe string, onTag bool) string {
	v := strings.TrimPrefix(describe, "v")
	if onTag {
		return v
	}

	if !strings.Contains(v, "-") {
		// just a commit hash
		return fallbackVersion + "-dev"
	}

	base, _, _ := strings.Cut(v, "-")
	if strings.Contains(v, "dirty") {
		return base + "-dev-dirty"
	}
	return base + "-dev"
}
