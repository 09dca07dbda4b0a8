package detect

import (
	"sort"

	"github.com/miralabs/mirasite/internal/model"
)

// RankedSlot is a download slot plus its presentation flags for one client.
type RankedSlot struct {
	model.DownloadSlot
	// Applicable controls visual emphasis; inapplicable slots render dimmed
	// but remain fully usable.
	Applicable bool `json:"applicable"`
}

// Score is the relevance of a slot platform for a detected client; lower is
// more relevant. Unknown or unrelated clients score everything 0, which
// leaves the canonical order untouched.
func Score(detected model.ClientPlatform, slot model.PlatformTag) int {
	switch detected {
	case model.ClientWindows:
		if slot == model.PlatformWindows {
			return 0
		}
		return 2
	case model.ClientMacARM64:
		switch slot {
		case model.PlatformMacARM64:
			return 0
		case model.PlatformMacX64:
			return 1
		}
		return 2
	case model.ClientMacX64:
		switch slot {
		case model.PlatformMacX64:
			return 0
		case model.PlatformMacARM64:
			return 1
		}
		return 2
	case model.ClientMac:
		if slot == model.PlatformWindows {
			return 2
		}
		return 0
	}
	return 0
}

// Applicable reports whether a slot should render at full strength for the
// detected client. While detection is unresolved everything shows at full
// strength.
func Applicable(detected model.ClientPlatform, slot model.PlatformTag) bool {
	switch detected {
	case model.ClientUnknown, model.ClientOther:
		return true
	case model.ClientMac:
		return slot == model.PlatformMacARM64 || slot == model.PlatformMacX64
	}
	return string(detected) == string(slot)
}

// Rank orders the slots by relevance for the detected client. The sort is
// stable, so equal scores keep the canonical resolution order. The input is
// never mutated.
func Rank(slots []model.DownloadSlot, detected model.ClientPlatform) []RankedSlot {
	ranked := make([]RankedSlot, len(slots))
	for i, slot := range slots {
		ranked[i] = RankedSlot{
			DownloadSlot: slot,
			Applicable:   Applicable(detected, slot.Platform),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(detected, ranked[i].Platform) < Score(detected, ranked[j].Platform)
	})
	return ranked
}
