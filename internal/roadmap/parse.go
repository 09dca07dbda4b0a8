// Package roadmap turns the upstream roadmap markdown into the "what's
// next" section of the site.
package roadmap

import (
	"strings"

	"github.com/miralabs/mirasite/pkg/version"
)

// ChecklistItem is one `- [ ]` / `- [x]` line under a milestone heading.
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Milestone is one versioned `##` heading and its checklist.
type Milestone struct {
	Heading string          `json:"heading"`
	Version string          `json:"version"`
	Items   []ChecklistItem `json:"items"`
}

// Parse reads the line-oriented roadmap format: a `## heading` line
// containing a dotted version number starts a milestone, and checklist lines
// belong to the most recent milestone heading. Anything else is ignored,
// including checklist lines before the first milestone.
func Parse(content string) []Milestone {
	var milestones []Milestone
	var current *Milestone

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if heading, ok := strings.CutPrefix(line, "## "); ok {
			heading = strings.TrimSpace(heading)
			ver, ok := version.Extract(heading)
			if !ok {
				// A heading without a version closes the current milestone so
				// later checklist lines don't leak into it.
				current = nil
				continue
			}
			milestones = append(milestones, Milestone{Heading: heading, Version: ver})
			current = &milestones[len(milestones)-1]
			continue
		}

		if current == nil {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- [ ] "):
			current.Items = append(current.Items, ChecklistItem{Text: strings.TrimSpace(line[6:])})
		case strings.HasPrefix(line, "- [x] "), strings.HasPrefix(line, "- [X] "):
			current.Items = append(current.Items, ChecklistItem{Text: strings.TrimSpace(line[6:]), Done: true})
		}
	}
	return milestones
}
