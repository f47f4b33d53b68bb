// Package buildinfo carries version metadata injected at build time via
// -ldflags; the defaults identify an untagged development build.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
