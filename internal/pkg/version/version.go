// Package version exposes the git metadata baked into the netifctl binary
// at build time. Run go generate in this directory before building a
// release so the embedded files reflect the actual checkout.
package version

import _ "embed"

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo describes the checkout the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = GitInfo{
	Commit: commit,
	Branch: branch,
	Tag:    tag,
	Dirty:  dirty == "dirty",
}

// GetGitInfo returns the build-time git metadata.
func GetGitInfo() GitInfo {
	return info
}
