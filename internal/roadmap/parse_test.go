package roadmap

import "testing"

const sampleRoadmap = `# Mira roadmap

Notes before the first milestone are ignored.
- [ ] stray item without a milestone

## v1.2.0
- [x] Tab groups
- [x] Profile switcher

## v1.3.0 — polish
- [x] Faster startup
- [ ] Vertical tabs

## Someday
- [ ] Ideas parking lot, no version so no milestone

## v2.0.0
- [ ] New engine
`

func TestParse(t *testing.T) {
	milestones := Parse(sampleRoadmap)
	if len(milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(milestones))
	}

	if milestones[0].Version != "1.2.0" || len(milestones[0].Items) != 2 {
		t.Errorf("milestone 0 = %+v", milestones[0])
	}
	if !milestones[0].Items[0].Done {
		t.Error("checked item parsed as open")
	}

	if milestones[1].Heading != "v1.3.0 — polish" {
		t.Errorf("heading = %q", milestones[1].Heading)
	}
	if milestones[1].Items[1].Done || milestones[1].Items[1].Text != "Vertical tabs" {
		t.Errorf("open item = %+v", milestones[1].Items[1])
	}

	// The un-versioned "Someday" heading is skipped; its item must not leak
	// into the previous milestone.
	if len(milestones[1].Items) != 2 {
		t.Errorf("milestone 1 has %d items, want 2", len(milestones[1].Items))
	}
}

func TestParseEmpty(t *testing.T) {
	if got := Parse(""); got != nil {
		t.Fatalf("expected no milestones, got %v", got)
	}
}
