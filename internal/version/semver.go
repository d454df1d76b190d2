package version

import (
	"strconv"
	"strings"
)

// parseSemver extracts the numeric major.minor.patch triple from a
// version string. Prerelease and build metadata suffixes are stripped,
// a leading "v" is tolerated, and anything that fails to parse is
// treated as 0.
func parseSemver(v string) [3]int {
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimPrefix(v, "v")

	var out [3]int
	for i, part := range strings.Split(v, ".") {
		if i >= len(out) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}

// isNewer reports whether latest is strictly newer than current,
// comparing only the core major.minor.patch triple. A final release is
// not considered newer than a prerelease of the same core version.
func isNewer(latest, current string) bool {
	l := parseSemver(latest)
	c := parseSemver(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}
