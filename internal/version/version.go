package version

// Build metadata, overridden via -ldflags at release time. The defaults
// identify a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
