package release

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/miralabs/mirasite/internal/host/github"
	"github.com/miralabs/mirasite/internal/model"
)

// ListReleases fetches the repo's releases in feed order (most recent
// first), with drafts removed. Any fetch or decode failure degrades to an
// empty list: the page renders a "no release available" state instead of an
// error.
func ListReleases(repo, version string) []model.Release {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=30", github.APIBase(), repo)

	var fetched []model.Release
	if err := github.GetJSON(url, version, &fetched); err != nil {
		logrus.WithField("repo", repo).Warnf("release feed unavailable: %v", err)
		return nil
	}

	releases := make([]model.Release, 0, len(fetched))
	for _, rel := range fetched {
		if rel.Draft {
			continue
		}
		releases = append(releases, rel)
	}
	return releases
}
