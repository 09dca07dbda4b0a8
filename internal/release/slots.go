package release

import (
	"strings"

	"github.com/miralabs/mirasite/internal/model"
)

// style selects one of the two installer-style candidate pools.
type style int

const (
	styleInstaller style = iota
	stylePortable
)

type slotSpec struct {
	key      model.SlotKey
	label    string
	platform model.PlatformTag
	arch     Arch // mac slots only
	style    style
	prefer   []string
}

// slotSpecs defines the six canonical slots in resolution order, with the
// preferred-term lists used for scoring inside each candidate pool.
var slotSpecs = []slotSpec{
	{model.SlotWindowsInstaller, "Windows Installer", model.PlatformWindows, ArchUnknown, styleInstaller, []string{"setup", ".msi", ".exe"}},
	{model.SlotWindowsPortable, "Windows Portable", model.PlatformWindows, ArchUnknown, stylePortable, []string{"portable", ".exe", ".zip"}},
	{model.SlotMacARMInstaller, "macOS Apple Silicon Installer", model.PlatformMacARM64, ArchARM64, styleInstaller, []string{"dmg", "pkg"}},
	{model.SlotMacARMPortable, "macOS Apple Silicon Portable", model.PlatformMacARM64, ArchARM64, stylePortable, []string{"portable", ".zip", ".tar.gz"}},
	{model.SlotMacX64Installer, "macOS Intel Installer", model.PlatformMacX64, ArchX64, styleInstaller, []string{"dmg", "pkg"}},
	{model.SlotMacX64Portable, "macOS Intel Portable", model.PlatformMacX64, ArchX64, stylePortable, []string{"portable", ".zip", ".tar.gz"}},
}

// BuildSlots classifies a release's assets into the six download slots.
// The result always has exactly six entries in canonical order; a slot with
// no matching asset carries a nil Asset. Construction never fails.
func BuildSlots(rel *model.Release) []model.DownloadSlot {
	type classified struct {
		asset model.Asset
		class Classification
	}
	pool := make([]classified, 0, len(rel.Assets))
	for _, a := range rel.Assets {
		c := Classify(a.Name)
		if !c.Downloadable {
			continue
		}
		pool = append(pool, classified{a, c})
	}

	collect := func(spec slotSpec, arch Arch) []model.Asset {
		var out []model.Asset
		for _, entry := range pool {
			c := entry.class
			switch spec.platform {
			case model.PlatformWindows:
				if !c.Windows {
					continue
				}
			default:
				if !c.Mac || c.MacArch != arch {
					continue
				}
			}
			if spec.style == styleInstaller && !c.Installer {
				continue
			}
			if spec.style == stylePortable && !c.Portable {
				continue
			}
			out = append(out, entry.asset)
		}
		return out
	}

	slots := make([]model.DownloadSlot, 0, len(slotSpecs))
	for _, spec := range slotSpecs {
		candidates := collect(spec, spec.arch)
		if len(candidates) == 0 && spec.platform != model.PlatformWindows {
			// No asset tagged with this exact mac architecture; fall back to
			// the unknown-architecture mac pool of the same style.
			candidates = collect(spec, ArchUnknown)
		}
		slots = append(slots, model.DownloadSlot{
			Key:      spec.key,
			Label:    spec.label,
			Platform: spec.platform,
			Asset:    bestAsset(candidates, spec.prefer),
		})
	}
	return slots
}

// bestAsset scores each candidate by its preferred-term hits, earlier terms
// weighing more, and breaks ties toward the larger file (the more complete
// package). Returns nil for an empty pool.
func bestAsset(candidates []model.Asset, prefer []string) *model.Asset {
	var best *model.Asset
	bestScore := -1
	for i := range candidates {
		lower := strings.ToLower(candidates[i].Name)
		score := 0
		for j, term := range prefer {
			if strings.Contains(lower, term) {
				score += (len(prefer) - j) * 10
			}
		}
		switch {
		case best == nil,
			score > bestScore,
			score == bestScore && candidates[i].Size > best.Size:
			best = &candidates[i]
			bestScore = score
		}
	}
	return best
}
