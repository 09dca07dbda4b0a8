package release

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Classification
	}{
		{"Mira-Setup-x64.exe", Classification{
			Downloadable: true, Windows: true, MacArch: ArchUnknown, Installer: true,
		}},
		{"Mira-Setup.msi", Classification{
			Downloadable: true, Windows: true, MacArch: ArchUnknown, Installer: true,
		}},
		{"Mira-win-portable.zip", Classification{
			Downloadable: true, Windows: true, MacArch: ArchUnknown, Portable: true,
		}},
		// A bare .exe without "setup" counts as portable-style.
		{"Mira-x64.exe", Classification{
			Downloadable: true, Windows: true, MacArch: ArchUnknown, Portable: true,
		}},
		{"Mira-mac-arm64.dmg", Classification{
			Downloadable: true, Mac: true, MacArch: ArchARM64, Installer: true,
		}},
		{"Mira-x86_64.pkg", Classification{
			Downloadable: true, Mac: true, MacArch: ArchX64, Installer: true,
		}},
		// "darwin" contains "win": the independent OS checks both fire.
		{"Mira-darwin-x86_64.pkg", Classification{
			Downloadable: true, Windows: true, Mac: true, MacArch: ArchX64, Installer: true,
		}},
		{"Mira-mac-apple_silicon.tar.gz", Classification{
			Downloadable: true, Mac: true, MacArch: ArchARM64, Portable: true,
		}},
		{"Mira-macos-intel-portable.zip", Classification{
			Downloadable: true, Mac: true, MacArch: ArchX64, Portable: true,
		}},
		{"Mira-mac.dmg", Classification{
			Downloadable: true, Mac: true, MacArch: ArchUnknown, Installer: true,
		}},
		// No "mac"/"darwin" token and no mac extension: not a mac asset, even
		// with an arm64 token.
		{"mira-portable-arm64.zip", Classification{
			Downloadable: true, MacArch: ArchUnknown, Portable: true,
		}},
		// Non-downloadable extensions are dropped entirely.
		{"SHA256SUMS", Classification{}},
		{"Mira-Setup-x64.exe.sig", Classification{}},
		{"mira-src.tar.bz2", Classification{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.name)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectArchTokenBoundaries(t *testing.T) {
	tests := []struct {
		in       string
		allowX64 bool
		want     Arch
	}{
		{"mira-mac-arm64.dmg", true, ArchARM64},
		{"mira-mac-aarch64.tar.gz", true, ArchARM64},
		{"mira-mac-apple-silicon.dmg", true, ArchARM64},
		{"mira-mac-x64.dmg", true, ArchX64},
		{"mira-mac-amd64.zip", true, ArchX64},
		{"mira mac intel build", true, ArchX64},
		// Token must be whole-word: digits around it break the match.
		{"mira-0x640.dmg", true, ArchUnknown},
		{"mira-sparmc64.dmg", true, ArchUnknown},
		// x64-family matching disabled for free-text signals.
		{"mozilla/5.0 something x64 build", false, ArchUnknown},
		{"mozilla/5.0 (macintosh) arm64", false, ArchARM64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DetectArch(tt.in, tt.allowX64); got != tt.want {
				t.Errorf("DetectArch(%q, %v) = %v, want %v", tt.in, tt.allowX64, got, tt.want)
			}
		})
	}
}
