package version

// Version is the current prproof release.
const Version = "0.3.0"

// FullVersion returns the version with a v prefix.
func FullVersion() string {
	return "v" + Version
}
