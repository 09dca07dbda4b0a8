// Package detect infers a visiting client's platform from request signals
// and ranks the download slots accordingly. Detection is best-effort and
// layered: each probe either concludes or falls through to a weaker signal,
// terminating at "other". It never changes which downloads exist, only how
// they are presented.
package detect

import (
	"net/http"
	"strings"

	"github.com/miralabs/mirasite/internal/model"
	"github.com/miralabs/mirasite/internal/release"
)

// Client-hint headers carrying the structured platform/architecture signal.
// ArchHints is what the server asks clients to include on follow-up requests
// (Accept-CH); a client that never complies simply falls through to the
// user-agent probes.
const (
	HeaderPlatform = "Sec-CH-UA-Platform"
	HeaderArch     = "Sec-CH-UA-Arch"
)

// ArchHints is the Accept-CH/Critical-CH value advertised on every response.
const ArchHints = HeaderPlatform + ", " + HeaderArch

type probe func() (model.ClientPlatform, bool)

// FromRequest runs the detection cascade and returns the first conclusive
// result. allowOverride enables the os query parameter, which exists for
// manual testing and must stay off in production.
func FromRequest(r *http.Request, allowOverride bool) model.ClientPlatform {
	hintArch := archFromHints(r)

	probes := []probe{
		func() (model.ClientPlatform, bool) { return fromQueryOverride(r, allowOverride) },
		func() (model.ClientPlatform, bool) { return fromClientHints(r, hintArch) },
		func() (model.ClientPlatform, bool) { return fromSystemSegment(r, hintArch) },
		func() (model.ClientPlatform, bool) { return fromFreeText(r, hintArch) },
	}
	for _, p := range probes {
		if got, ok := p(); ok {
			return got
		}
	}
	return model.ClientOther
}

// fromQueryOverride reads the development-only os parameter.
func fromQueryOverride(r *http.Request, allowed bool) (model.ClientPlatform, bool) {
	if !allowed {
		return "", false
	}
	switch strings.ToLower(r.URL.Query().Get("os")) {
	case "windows", "win":
		return model.ClientWindows, true
	case "mac-arm64", "arm64", "mac-arm", "macos-arm64":
		return model.ClientMacARM64, true
	case "mac-x64", "x64", "intel", "mac-intel", "macos-x64":
		return model.ClientMacX64, true
	case "mac", "macos":
		return model.ClientMac, true
	}
	return "", false
}

// fromClientHints reads the structured platform hint. It concludes only when
// the platform is Windows, or macOS with a resolved architecture; macOS
// without the arch hint falls through so weaker signals get a chance before
// the generic answer.
func fromClientHints(r *http.Request, hintArch release.Arch) (model.ClientPlatform, bool) {
	platform := strings.ToLower(unquoteHint(r.Header.Get(HeaderPlatform)))
	if platform == "" {
		return "", false
	}
	switch {
	case strings.Contains(platform, "windows"):
		return model.ClientWindows, true
	case strings.Contains(platform, "mac"):
		if p, ok := macWithArch(hintArch); ok {
			return p, true
		}
	}
	return "", false
}

// fromSystemSegment parses the parenthesized system segment of the
// User-Agent, the legacy platform signal, combined with any architecture the
// hint headers resolved. A mac without a resolved architecture concludes as
// generic mac here.
func fromSystemSegment(r *http.Request, hintArch release.Arch) (model.ClientPlatform, bool) {
	segment := strings.ToLower(systemSegment(r.UserAgent()))
	if segment == "" {
		return "", false
	}
	switch {
	case strings.Contains(segment, "windows"):
		return model.ClientWindows, true
	case strings.Contains(segment, "macintosh"), strings.Contains(segment, "mac os x"):
		if p, ok := macWithArch(hintArch); ok {
			return p, true
		}
		return model.ClientMac, true
	}
	return "", false
}

// fromFreeText scans the whole User-Agent with the same substring heuristics
// used for installer filenames. The x64 token family is disabled in this
// path; free text is full of unrelated x64-like substrings.
func fromFreeText(r *http.Request, hintArch release.Arch) (model.ClientPlatform, bool) {
	ua := strings.ToLower(r.UserAgent())
	if ua == "" {
		return "", false
	}
	arch := hintArch
	if arch == release.ArchUnknown {
		arch = release.DetectArch(ua, false)
	}
	// mac before windows: "darwin" contains "win".
	switch {
	case strings.Contains(ua, "mac"), strings.Contains(ua, "darwin"):
		if p, ok := macWithArch(arch); ok {
			return p, true
		}
		return model.ClientMac, true
	case strings.Contains(ua, "win"):
		return model.ClientWindows, true
	}
	return "", false
}

func macWithArch(arch release.Arch) (model.ClientPlatform, bool) {
	switch arch {
	case release.ArchARM64:
		return model.ClientMacARM64, true
	case release.ArchX64:
		return model.ClientMacX64, true
	}
	return "", false
}

// archFromHints resolves the architecture hint header once per request; every
// later probe combines it with its own platform signal.
func archFromHints(r *http.Request) release.Arch {
	raw := strings.ToLower(unquoteHint(r.Header.Get(HeaderArch)))
	switch raw {
	case "arm", "arm64", "aarch64":
		return release.ArchARM64
	case "x86", "x64", "x86_64", "amd64":
		return release.ArchX64
	}
	return release.ArchUnknown
}

// unquoteHint strips the structured-header quoting from a client hint value
// (`"macOS"` -> `macOS`).
func unquoteHint(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}

// systemSegment returns the contents of the first parenthesized group of a
// user agent, e.g. `(Windows NT 10.0; Win64; x64)` without the parentheses.
func systemSegment(ua string) string {
	open := strings.IndexByte(ua, '(')
	if open < 0 {
		return ""
	}
	close := strings.IndexByte(ua[open:], ')')
	if close < 0 {
		return ""
	}
	return ua[open+1 : open+close]
}
