package roadmap

import "github.com/miralabs/mirasite/pkg/version"

// NextMilestone is the first milestone ahead of the current stable release,
// reduced to what the page shows: its heading and the work still open.
type NextMilestone struct {
	Heading string   `json:"heading"`
	Version string   `json:"version"`
	Items   []string `json:"items"`
}

// Next picks the lowest-versioned milestone strictly newer than currentTag
// and returns its unchecked items. When currentTag carries no usable version
// it falls back to the first milestone with open items. Returns nil when
// there is nothing to show.
func Next(milestones []Milestone, currentTag string) *NextMilestone {
	current, haveCurrent := version.Parse(currentTag)

	var best *Milestone
	for i := range milestones {
		m := &milestones[i]
		mv, ok := version.Parse(m.Version)
		if !ok {
			continue
		}
		if haveCurrent {
			if mv.Compare(current) <= 0 {
				continue
			}
		} else if !hasOpenItems(m) {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		bv, _ := version.Parse(best.Version)
		if mv.Compare(bv) < 0 {
			best = m
		}
	}
	if best == nil {
		return nil
	}

	next := &NextMilestone{Heading: best.Heading, Version: best.Version}
	for _, item := range best.Items {
		if !item.Done {
			next.Items = append(next.Items, item.Text)
		}
	}
	return next
}

func hasOpenItems(m *Milestone) bool {
	for _, item := range m.Items {
		if !item.Done {
			return true
		}
	}
	return false
}
