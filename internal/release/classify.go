package release

import "strings"

// Arch is the CPU architecture read out of an asset filename.
type Arch string

const (
	ArchARM64   Arch = "arm64"
	ArchX64     Arch = "x64"
	ArchUnknown Arch = "unknown"
)

// Classification is the full name-heuristic readout for one asset filename.
// All checks run on the lowercased name; each field is independent.
type Classification struct {
	Downloadable bool
	Windows      bool
	Mac          bool
	MacArch      Arch
	Installer    bool
	Portable     bool
}

var downloadableExtensions = []string{".exe", ".msi", ".dmg", ".pkg", ".zip", ".tar.gz"}

// Classify derives a Classification from an asset filename. It is a pure
// function so the fuzzy string matching stays unit-testable away from any
// network code.
func Classify(name string) Classification {
	lower := strings.ToLower(name)

	var c Classification
	c.Downloadable = hasAnySuffix(lower, downloadableExtensions...)
	if !c.Downloadable {
		return c
	}

	c.Windows = strings.Contains(lower, "win") || hasAnySuffix(lower, ".exe", ".msi")
	c.Mac = strings.Contains(lower, "mac") || strings.Contains(lower, "darwin") ||
		hasAnySuffix(lower, ".dmg", ".pkg")
	if c.Mac {
		c.MacArch = DetectArch(lower, true)
	} else {
		c.MacArch = ArchUnknown
	}

	c.Installer = strings.Contains(lower, "setup") || hasAnySuffix(lower, ".msi", ".dmg", ".pkg")
	c.Portable = strings.Contains(lower, "portable") ||
		hasAnySuffix(lower, ".zip", ".tar.gz") ||
		(hasAnySuffix(lower, ".exe") && !strings.Contains(lower, "setup"))

	return c
}

// DetectArch finds an architecture token in an already-lowercased string.
// allowX64 disables the x64-family tokens when false; free-text signals such
// as user agents carry too many unrelated x64-like substrings (version
// numbers, GPU names), while arm64 tokens rarely appear outside a genuine
// architecture tag. The asymmetry is deliberate.
func DetectArch(lower string, allowX64 bool) Arch {
	if containsToken(lower, "arm64") || containsToken(lower, "aarch64") ||
		strings.Contains(lower, "apple-silicon") || strings.Contains(lower, "apple_silicon") {
		return ArchARM64
	}
	if allowX64 {
		if containsToken(lower, "x64") || containsToken(lower, "x86_64") ||
			containsToken(lower, "amd64") || containsToken(lower, "intel") {
			return ArchX64
		}
	}
	return ArchUnknown
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// containsToken reports whether token occurs in s bounded by non-alphanumeric
// characters (or the string ends), so "x64" matches "mira-x64.zip" but not
// "0x640".
func containsToken(s, token string) bool {
	for from := 0; from <= len(s)-len(token); {
		idx := strings.Index(s[from:], token)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(token)
		if (start == 0 || !isAlnum(s[start-1])) && (end == len(s) || !isAlnum(s[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
