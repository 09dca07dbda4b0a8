package model

import "time"

// Release is the subset of the GitHub release payload that mirasite uses.
type Release struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Prerelease  bool      `json:"prerelease"`
	Draft       bool      `json:"draft"`
	Assets      []Asset   `json:"assets"`
}

// Asset is the subset of the GitHub release asset payload that mirasite uses.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadUrl string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// PlatformTag identifies which platform a download slot targets.
type PlatformTag string

const (
	PlatformWindows  PlatformTag = "windows"
	PlatformMacARM64 PlatformTag = "mac-arm64"
	PlatformMacX64   PlatformTag = "mac-x64"
)

// ClientPlatform is the best-effort detection result for a visiting client.
// It is a superset of PlatformTag: detection can resolve to an
// architecture-agnostic mac, to an unrelated platform, or not at all.
type ClientPlatform string

const (
	ClientWindows  ClientPlatform = "windows"
	ClientMacARM64 ClientPlatform = "mac-arm64"
	ClientMacX64   ClientPlatform = "mac-x64"
	ClientMac      ClientPlatform = "mac"
	ClientOther    ClientPlatform = "other"
	ClientUnknown  ClientPlatform = "unknown"
)

// SlotKey names one of the six (platform x installer-style) combinations.
type SlotKey string

const (
	SlotWindowsInstaller SlotKey = "windows-installer"
	SlotWindowsPortable  SlotKey = "windows-portable"
	SlotMacARMInstaller  SlotKey = "mac-arm64-installer"
	SlotMacARMPortable   SlotKey = "mac-arm64-portable"
	SlotMacX64Installer  SlotKey = "mac-x64-installer"
	SlotMacX64Portable   SlotKey = "mac-x64-portable"
)

// SlotOrder is the canonical resolution-time order of the six slots.
var SlotOrder = []SlotKey{
	SlotWindowsInstaller,
	SlotWindowsPortable,
	SlotMacARMInstaller,
	SlotMacARMPortable,
	SlotMacX64Installer,
	SlotMacX64Portable,
}

// DownloadSlot is one resolved presentation unit. Asset is nil when the
// selected release has no matching binary.
type DownloadSlot struct {
	Key      SlotKey     `json:"key"`
	Label    string      `json:"label"`
	Platform PlatformTag `json:"platform"`
	Asset    *Asset      `json:"asset,omitempty"`
}
