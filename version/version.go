package version

// Version is the current release, set at build time with
// -ldflags "-X github.com/karigane/bookscan/version.Version=x.y.z".
var Version = "0.2.0"

func GetCurrentVersion() string {
	return Version
}
