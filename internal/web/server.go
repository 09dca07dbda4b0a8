// Package web serves the download site: one HTML page and the JSON API it
// is built from.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/miralabs/mirasite/internal/cache"
	"github.com/miralabs/mirasite/internal/config"
	"github.com/miralabs/mirasite/internal/detect"
	"github.com/miralabs/mirasite/internal/model"
	"github.com/miralabs/mirasite/internal/release"
	"github.com/miralabs/mirasite/internal/roadmap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server holds the request-independent pieces: configuration, the cached
// upstream fetchers, and the parsed templates. Everything request-scoped is
// recomputed per request from immutable cached data, so no locking beyond
// the memos is needed.
type Server struct {
	cfg      *config.Config
	version  string
	releases *cache.Memo[[]model.Release]
	roadmap  *cache.Memo[string]
	tmpl     *template.Template
}

func New(cfg *config.Config, version string) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:     cfg,
		version: version,
		tmpl:    tmpl,
		releases: cache.NewMemo(cfg.ReleaseTTL(), func() []model.Release {
			return release.ListReleases(cfg.Releases.Repo, version)
		}),
		roadmap: cache.NewMemo(cfg.RoadmapTTL(), func() string {
			return roadmap.Fetch(cfg.Roadmap.Repo, cfg.Roadmap.Path, cfg.Roadmap.Ref, version)
		}),
	}, nil
}

// Handler returns the site's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/downloads", s.handleDownloads)
	mux.HandleFunc("GET /api/roadmap", s.handleRoadmap)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe runs the site until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logrus.WithField("listen", s.cfg.Listen).Info("serving download site")
	return srv.ListenAndServe()
}

// resolve performs the per-request pipeline: cached feed, release
// selection, slot classification, client detection, ranking.
func (s *Server) resolve(r *http.Request) (release.Resolution, model.ClientPlatform, []detect.RankedSlot) {
	res := release.Resolve(s.releases.Get(), queryFlag(r, "includePrereleases"))
	detected := detect.FromRequest(r, !s.cfg.Production())
	return res, detected, detect.Rank(res.Slots, detected)
}

// queryFlag accepts "1" and "true" (any case) as true.
func queryFlag(r *http.Request, name string) bool {
	v := strings.ToLower(r.URL.Query().Get(name))
	return v == "1" || v == "true"
}

// advertiseHints asks capable clients to resend with platform/arch client
// hints. Clients that ignore the ask degrade to user-agent parsing.
func advertiseHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", detect.ArchHints)
	w.Header().Set("Critical-CH", detect.ArchHints)
	w.Header().Add("Vary", detect.HeaderPlatform)
	w.Header().Add("Vary", detect.HeaderArch)
}
