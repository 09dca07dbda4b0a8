package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/miralabs/mirasite/internal/detect"
	"github.com/miralabs/mirasite/internal/model"
	"github.com/miralabs/mirasite/internal/roadmap"
	"github.com/miralabs/mirasite/pkg/version"
)

// downloadView is one download entry as rendered: label, optional direct
// URL, and the enabled/dimmed affordances.
type downloadView struct {
	Key        model.SlotKey     `json:"key"`
	Label      string            `json:"label"`
	Platform   model.PlatformTag `json:"platform"`
	Applicable bool              `json:"applicable"`
	Available  bool              `json:"available"`
	Name       string            `json:"name,omitempty"`
	URL        string            `json:"url,omitempty"`
	Size       int64             `json:"size,omitempty"`
	SizeHuman  string            `json:"sizeHuman,omitempty"`
}

type releaseView struct {
	Tag         string    `json:"tag"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Prerelease  bool      `json:"prerelease"`
}

type downloadsResponse struct {
	Release            *releaseView   `json:"release"`
	IncludePrereleases bool           `json:"includePrereleases"`
	Detected           string         `json:"detectedPlatform"`
	Downloads          []downloadView `json:"downloads"`
}

type roadmapResponse struct {
	CurrentVersion string                 `json:"currentVersion,omitempty"`
	Next           *roadmap.NextMilestone `json:"next"`
}

type pageData struct {
	Release            *releaseView
	IncludePrereleases bool
	Detected           string
	Downloads          []downloadView
	Next               *roadmap.NextMilestone
}

func (s *Server) handleDownloads(w http.ResponseWriter, r *http.Request) {
	advertiseHints(w)
	res, detected, ranked := s.resolve(r)
	writeJSON(w, downloadsResponse{
		Release:            viewRelease(res.Release),
		IncludePrereleases: res.IncludePrereleases,
		Detected:           string(detected),
		Downloads:          viewDownloads(ranked),
	})
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	current := s.currentVersion()
	milestones := roadmap.Parse(s.roadmap.Get())
	writeJSON(w, roadmapResponse{
		CurrentVersion: version.Display(current),
		Next:           roadmap.Next(milestones, current),
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	advertiseHints(w)
	res, detected, ranked := s.resolve(r)

	data := pageData{
		Release:            viewRelease(res.Release),
		IncludePrereleases: res.IncludePrereleases,
		Detected:           string(detected),
		Downloads:          viewDownloads(ranked),
	}
	current := s.currentVersion()
	data.Next = roadmap.Next(roadmap.Parse(s.roadmap.Get()), current)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "downloads.tmpl", data); err != nil {
		logrus.Errorf("render downloads page: %v", err)
	}
}

// currentVersion is the roadmap comparison baseline: the most recent stable
// tag when the feed has one, else the configured fallback.
func (s *Server) currentVersion() string {
	releases := s.releases.Get()
	for i := range releases {
		if !releases[i].Prerelease {
			return releases[i].TagName
		}
	}
	return s.cfg.CurrentVersion
}

func viewRelease(rel *model.Release) *releaseView {
	if rel == nil {
		return nil
	}
	return &releaseView{
		Tag:         rel.TagName,
		Name:        rel.Name,
		URL:         rel.HTMLURL,
		PublishedAt: rel.PublishedAt,
		Prerelease:  rel.Prerelease,
	}
}

func viewDownloads(ranked []detect.RankedSlot) []downloadView {
	views := make([]downloadView, 0, len(ranked))
	for _, slot := range ranked {
		view := downloadView{
			Key:        slot.Key,
			Label:      slot.Label,
			Platform:   slot.Platform,
			Applicable: slot.Applicable,
		}
		if slot.Asset != nil {
			view.Available = true
			view.Name = slot.Asset.Name
			view.URL = slot.Asset.BrowserDownloadUrl
			view.Size = slot.Asset.Size
			view.SizeHuman = humanize.Bytes(uint64(slot.Asset.Size))
		}
		views = append(views, view)
	}
	return views
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}
