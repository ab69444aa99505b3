// Package version carries build metadata, overridden at link time with
// -ldflags "-X github.com/ZanzyTHEbar/voicetracer/internal/version.Version=...".
package version

const Name = "VoiceTracer"

var (
	Version = "1.0.0"
	Commit  = "unknown"
)

// String formats the version for CLI output.
func String() string {
	return Name + " " + Version + " (" + Commit + ")"
}
