// Package version resolves the running build's identity once at
// startup. An -ldflags override wins, then the VCS revision embedded
// by the toolchain, then "dev". The resolved string feeds the health
// endpoint and outbound user agents.
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "sift"

// gitCommitOverride carries the commit hash into container builds,
// where no .git directory exists for the toolchain to stamp.
var gitCommitOverride string

// GitCommit is the short (8-char) commit hash, or "dev" when neither
// the override nor embedded build info can supply one.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		if len(gitCommitOverride) > 8 {
			return gitCommitOverride[:8]
		}
		return gitCommitOverride
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 8 {
				return s.Value[:8]
			}
			return s.Value
		}
	}
	return "dev"
}

// Full renders "sift/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
