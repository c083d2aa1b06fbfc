package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of binaries built without ldflags.
const DevVersion = "dev"

// IsDevBuild reports whether version is not a tagged release.
func IsDevBuild(version string) bool {
	v := strings.TrimSpace(version)
	return v == "" || v == DevVersion
}

// CompareVersions returns -1, 0 or 1 as current is older than, equal to or
// newer than latest. A leading "v" is accepted on either side.
func CompareVersions(current, latest string) (int, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// IsUpdateAvailable reports whether latest is newer than current. Dev builds
// always report an update so they are nudged to a release.
func IsUpdateAvailable(current, latest string) (bool, error) {
	if IsDevBuild(current) {
		if _, err := semver.NewVersion(strings.TrimPrefix(latest, "v")); err != nil {
			return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
		}
		return true, nil
	}
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}
