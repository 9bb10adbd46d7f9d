package dunecorex

import (
	"runtime/debug"

	"golang.org/x/mod/semver"
)

const modulePath = "github.com/dunequery/dunecorex"

// buildVersion is the module version this package was built at, or "unknown"
// for local builds where the go tool reports "(devel)".
var buildVersion = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Path == modulePath && semver.IsValid(info.Main.Version) {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath && semver.IsValid(dep.Version) {
			return dep.Version
		}
	}

	return "unknown"
}()
