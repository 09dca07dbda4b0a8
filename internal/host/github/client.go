// Package github wraps the handful of GitHub API calls mirasite makes.
package github

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/levigross/grequests"
)

const (
	defaultAPIBase = "https://api.github.com"
	defaultRawBase = "https://raw.githubusercontent.com"
)

const requestTimeout = 30 * time.Second

// TokenFromEnv returns an API token for authenticated requests, if any.
// Unauthenticated requests work too, at a lower rate limit.
func TokenFromEnv() string {
	if tok := strings.TrimSpace(os.Getenv("MIRASITE_GITHUB_TOKEN")); tok != "" {
		return tok
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

// APIBase returns the API base URL, overridable via MIRASITE_API_BASE
// so tests can point at a local fake.
func APIBase() string {
	base := strings.TrimSpace(os.Getenv("MIRASITE_API_BASE"))
	if base == "" {
		return defaultAPIBase
	}
	return strings.TrimRight(base, "/")
}

// RawBase returns the raw-content base URL, overridable via
// MIRASITE_RAW_BASE for tests.
func RawBase() string {
	base := strings.TrimSpace(os.Getenv("MIRASITE_RAW_BASE"))
	if base == "" {
		return defaultRawBase
	}
	return strings.TrimRight(base, "/")
}

func UserAgent(version string) string {
	return fmt.Sprintf("mirasite/%s", version)
}

func options(version string) *grequests.RequestOptions {
	headers := map[string]string{
		"User-Agent": UserAgent(version),
		"Accept":     "application/vnd.github.v3+json",
	}
	if tok := TokenFromEnv(); tok != "" {
		headers["Authorization"] = "Bearer " + tok
	}
	return &grequests.RequestOptions{
		Headers:        headers,
		RequestTimeout: requestTimeout,
	}
}

// GetJSON fetches url and decodes the body into out. A non-2xx status is
// returned as an error; callers decide whether that degrades to empty data.
func GetJSON(url, version string, out any) error {
	resp, err := grequests.Get(url, options(version))
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Close()
	if !resp.Ok {
		return fmt.Errorf("status %d from %s", resp.StatusCode, url)
	}
	if err := resp.JSON(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// GetRaw fetches url and returns the raw body bytes.
func GetRaw(url, version string) ([]byte, error) {
	resp, err := grequests.Get(url, options(version))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Close()
	if !resp.Ok {
		return nil, fmt.Errorf("status %d from %s", resp.StatusCode, url)
	}
	return resp.Bytes(), nil
}
