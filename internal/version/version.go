// internal/version/version.go
package version

// Version is the tool version reported by --version.
// Release builds override it via -ldflags "-X keggblast/internal/version.Version=...".
var Version = "0.1.0"
