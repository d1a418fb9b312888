package version

// Populated by the Go linker (-ldflags "-X ...") at release build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
