package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/disnet/flint-note-sub011/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/disnet/flint-note-sub011/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/disnet/flint-note-sub011/internal/version.Date={{.Date}}
)
