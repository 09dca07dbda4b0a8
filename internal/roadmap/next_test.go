package roadmap

import "testing"

func TestNextPicksFirstUnreleasedMilestone(t *testing.T) {
	milestones := Parse(sampleRoadmap)

	next := Next(milestones, "v1.2.0")
	if next == nil {
		t.Fatal("expected a next milestone")
	}
	if next.Heading != "v1.3.0 — polish" {
		t.Errorf("heading = %q, want the v1.3.0 milestone", next.Heading)
	}
	if len(next.Items) != 1 || next.Items[0] != "Vertical tabs" {
		t.Errorf("items = %v, want only the unchecked item", next.Items)
	}
}

func TestNextSkipsPastMilestones(t *testing.T) {
	next := Next(Parse(sampleRoadmap), "v1.3.0")
	if next == nil || next.Version != "2.0.0" {
		t.Fatalf("next = %+v, want the v2.0.0 milestone", next)
	}
}

func TestNextNothingAhead(t *testing.T) {
	if next := Next(Parse(sampleRoadmap), "v2.0.0"); next != nil {
		t.Fatalf("expected nil, got %+v", next)
	}
}

func TestNextWithoutCurrentVersionFallsBack(t *testing.T) {
	// No usable baseline: the first milestone with open items wins.
	next := Next(Parse(sampleRoadmap), "")
	if next == nil || next.Version != "1.3.0" {
		t.Fatalf("next = %+v, want the first milestone with open items", next)
	}
}

func TestNextUnorderedHeadings(t *testing.T) {
	const content = `## v2.0.0
- [ ] New engine

## v1.3.0
- [ ] Vertical tabs
`
	next := Next(Parse(content), "v1.2.0")
	if next == nil || next.Version != "1.3.0" {
		t.Fatalf("next = %+v, want the lowest version ahead of current", next)
	}
}
