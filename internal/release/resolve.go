// Package release resolves upstream release metadata into the fixed set of
// download slots shown on the site.
package release

import "github.com/miralabs/mirasite/internal/model"

// Resolution is the resolver's output for one page request.
type Resolution struct {
	// Release is the selected release, nil when the feed yielded nothing.
	Release *model.Release
	// Slots is the six-slot list, nil when no release was selected.
	Slots []model.DownloadSlot
	// IncludePrereleases is the effective decision: the caller's request,
	// forced on when no stable release exists.
	IncludePrereleases bool
	// Stable is the most recent stable release, if any. The roadmap section
	// compares milestones against its tag.
	Stable *model.Release
}

// Resolve selects a release from the feed and classifies its assets.
// releases must be in feed order (most recent first) with drafts removed.
func Resolve(releases []model.Release, includePrereleases bool) Resolution {
	var stable []model.Release
	for _, rel := range releases {
		if !rel.Prerelease {
			stable = append(stable, rel)
		}
	}

	// No stable release means pre-releases are the only option, regardless
	// of what the caller asked for.
	effective := includePrereleases || len(stable) == 0

	res := Resolution{IncludePrereleases: effective}
	if len(stable) > 0 {
		res.Stable = &stable[0]
	}

	var selected *model.Release
	if effective {
		if len(releases) > 0 {
			selected = &releases[0]
		}
	} else {
		selected = &stable[0]
	}
	if selected == nil {
		return res
	}

	res.Release = selected
	res.Slots = BuildSlots(selected)
	return res
}
