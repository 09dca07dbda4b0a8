// Package version provides small helpers for the loosely semver-shaped tags
// and headings the site consumes: release tags like "v1.2.0" and roadmap
// headings like "## v1.3.0 — polish".
//
// Upstream data is not guaranteed to be strict semver, so every helper
// reports whether a usable version was found instead of erroring the page.
package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var dottedVersion = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Normalize strips a leading "v" and validates that the remainder is
// semver-like (at least numeric MAJOR.MINOR). Returns the normalized string
// and whether comparison is possible.
func Normalize(tag string) (string, bool) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", false
	}

	normalized := strings.TrimPrefix(trimmed, "v")
	parts := strings.Split(normalized, ".")
	if len(parts) < 2 {
		return "", false
	}
	for i := 0; i < 2; i++ {
		if _, err := strconv.Atoi(parts[i]); err != nil {
			return "", false
		}
	}
	return normalized, true
}

// Extract finds the first dotted version number anywhere in s, for headings
// that wrap the version in prose.
func Extract(s string) (string, bool) {
	m := dottedVersion.FindString(s)
	return m, m != ""
}

// Parse turns a tag or heading into a semver version, tolerating a "v"
// prefix and surrounding prose.
func Parse(s string) (*semver.Version, bool) {
	if normalized, ok := Normalize(s); ok {
		if v, err := semver.NewVersion(normalized); err == nil {
			return v, true
		}
	}
	if extracted, ok := Extract(s); ok {
		if v, err := semver.NewVersion(extracted); err == nil {
			return v, true
		}
	}
	return nil, false
}

// Compare orders two version-ish strings. Returns 0 along with false when
// either side has no usable version.
func Compare(a, b string) (int, bool) {
	av, ok := Parse(a)
	if !ok {
		return 0, false
	}
	bv, ok := Parse(b)
	if !ok {
		return 0, false
	}
	return av.Compare(bv), true
}

// Display formats a version for the page, adding the conventional "v" prefix
// when missing.
func Display(v string) string {
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
