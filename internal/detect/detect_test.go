package detect

import (
	"net/http/httptest"
	"testing"

	"github.com/miralabs/mirasite/internal/model"
)

const (
	uaWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	uaMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

func TestFromRequestQueryOverride(t *testing.T) {
	tests := []struct {
		os   string
		want model.ClientPlatform
	}{
		{"windows", model.ClientWindows},
		{"win", model.ClientWindows},
		{"mac-arm64", model.ClientMacARM64},
		{"arm64", model.ClientMacARM64},
		{"macos-arm64", model.ClientMacARM64},
		{"mac-x64", model.ClientMacX64},
		{"intel", model.ClientMacX64},
		{"mac", model.ClientMac},
		{"macos", model.ClientMac},
	}
	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?os="+tt.os, nil)
			if got := FromRequest(r, true); got != tt.want {
				t.Errorf("override %q = %v, want %v", tt.os, got, tt.want)
			}
		})
	}
}

func TestFromRequestOverrideDisabledInProduction(t *testing.T) {
	r := httptest.NewRequest("GET", "/?os=mac-arm64", nil)
	r.Header.Set("User-Agent", uaWindows)
	if got := FromRequest(r, false); got != model.ClientWindows {
		t.Fatalf("production must ignore the override, got %v", got)
	}
}

func TestFromRequestClientHints(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		arch     string
		ua       string
		want     model.ClientPlatform
	}{
		{"windows hint", `"Windows"`, "", "", model.ClientWindows},
		{"mac with arm hint", `"macOS"`, `"arm"`, "", model.ClientMacARM64},
		{"mac with x86 hint", `"macOS"`, `"x86"`, "", model.ClientMacX64},
		// Platform hint alone is inconclusive for mac; the legacy segment
		// then answers with generic mac.
		{"mac without arch hint", `"macOS"`, "", uaMac, model.ClientMac},
		// A non-windows, non-mac hint falls through to the user agent.
		{"linux hint windows ua", `"Linux"`, "", uaWindows, model.ClientWindows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.Header.Set(HeaderPlatform, tt.platform)
			if tt.arch != "" {
				r.Header.Set(HeaderArch, tt.arch)
			}
			if tt.ua != "" {
				r.Header.Set("User-Agent", tt.ua)
			}
			if got := FromRequest(r, false); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromRequestUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want model.ClientPlatform
	}{
		{"windows ua", uaWindows, model.ClientWindows},
		// navigator-style mac UAs claim Intel regardless of the real chip;
		// without an arch hint the answer stays generic.
		{"mac ua", uaMac, model.ClientMac},
		{"linux ua", "Mozilla/5.0 (X11; Linux x86_64)", model.ClientOther},
		{"curl", "curl/8.4.0", model.ClientOther},
		{"empty", "", model.ClientOther},
		// Free-text scan: arm64 tokens are trusted, x64 tokens are not.
		{"darwin arm64 tool", "mira-updater darwin arm64", model.ClientMacARM64},
		{"darwin x64 tool", "mira-updater darwin x64", model.ClientMac},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.ua != "" {
				r.Header.Set("User-Agent", tt.ua)
			}
			if got := FromRequest(r, false); got != tt.want {
				t.Errorf("ua %q = %v, want %v", tt.ua, got, tt.want)
			}
		})
	}
}

func TestFromRequestHintArchCombinesWithUserAgent(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("User-Agent", uaMac)
	r.Header.Set(HeaderArch, `"arm"`)
	if got := FromRequest(r, false); got != model.ClientMacARM64 {
		t.Fatalf("arch hint should upgrade the legacy mac signal, got %v", got)
	}
}
