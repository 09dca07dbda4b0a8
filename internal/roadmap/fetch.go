package roadmap

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/miralabs/mirasite/internal/host/github"
)

// contentsPayload is the subset of the GitHub contents API response we read.
type contentsPayload struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Fetch retrieves the roadmap document, trying the contents API first and
// the raw file URL second; whichever succeeds wins. Both failing degrades to
// an empty document and the page drops the roadmap section.
func Fetch(repo, path, ref, version string) string {
	if content, err := fetchContentsAPI(repo, path, ref, version); err == nil {
		return content
	} else {
		logrus.WithField("repo", repo).Debugf("contents API failed, trying raw: %v", err)
	}

	rawURL := fmt.Sprintf("%s/%s/%s/%s", github.RawBase(), repo, ref, path)
	body, err := github.GetRaw(rawURL, version)
	if err != nil {
		logrus.WithField("repo", repo).Warnf("roadmap unavailable: %v", err)
		return ""
	}
	return string(body)
}

func fetchContentsAPI(repo, path, ref, version string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s?ref=%s", github.APIBase(), repo, path, ref)

	var payload contentsPayload
	if err := github.GetJSON(url, version, &payload); err != nil {
		return "", err
	}
	if payload.Encoding != "base64" {
		return "", fmt.Errorf("unexpected contents encoding %q", payload.Encoding)
	}

	// The API wraps the base64 body in newlines.
	compact := strings.ReplaceAll(payload.Content, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("decode contents: %w", err)
	}
	return string(decoded), nil
}
