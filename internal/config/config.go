// Package config loads the site configuration file and layers it over the
// built-in defaults. Files may be YAML or JSON; either way the decoded
// document is validated against the embedded JSON Schema before use.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// ReleaseSource points at the repository whose releases feed the download
// page.
type ReleaseSource struct {
	Repo     string `yaml:"repo" json:"repo"`
	CacheTTL string `yaml:"cacheTTL" json:"cacheTTL"`
}

// RoadmapSource points at the roadmap document.
type RoadmapSource struct {
	Repo     string `yaml:"repo" json:"repo"`
	Path     string `yaml:"path" json:"path"`
	Ref      string `yaml:"ref" json:"ref"`
	CacheTTL string `yaml:"cacheTTL" json:"cacheTTL"`
}

// Config is the full site configuration.
type Config struct {
	Listen      string `yaml:"listen" json:"listen"`
	Environment string `yaml:"environment" json:"environment"`
	// CurrentVersion is the fallback baseline for the roadmap section when
	// the release feed yields no stable release.
	CurrentVersion string        `yaml:"currentVersion" json:"currentVersion"`
	Releases       ReleaseSource `yaml:"releases" json:"releases"`
	Roadmap        RoadmapSource `yaml:"roadmap" json:"roadmap"`
}

var defaults = Config{
	Listen:      ":8080",
	Environment: "production",
	Releases: ReleaseSource{
		Repo:     "miralabs/mira",
		CacheTTL: "5m",
	},
	Roadmap: RoadmapSource{
		Repo:     "miralabs/mira",
		Path:     "ROADMAP.md",
		Ref:      "main",
		CacheTTL: "10m",
	},
}

// Production reports whether development-only affordances (the os query
// override) must stay disabled.
func (c *Config) Production() bool {
	return c.Environment != "development"
}

// ReleaseTTL is the revalidation window for the release feed.
func (c *Config) ReleaseTTL() time.Duration {
	return ttlOrDefault(c.Releases.CacheTTL, 5*time.Minute)
}

// RoadmapTTL is the revalidation window for the roadmap document.
func (c *Config) RoadmapTTL() time.Duration {
	return ttlOrDefault(c.Roadmap.CacheTTL, 10*time.Minute)
}

func ttlOrDefault(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Load reads, validates, and merges the configuration file at path.
// An empty path returns the defaults. Unlike upstream data, a broken config
// file is a deployment error and does fail loudly.
func Load(path string) (*Config, error) {
	cfg := defaults
	if path == "" {
		applyEnv(&cfg)
		return &cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// YAML is a superset of JSON, so one decoder covers both file formats.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg = merge(cfg, loaded)
	applyEnv(&cfg)
	return &cfg, nil
}

func validate(doc any) error {
	compiler := jsonschema.NewCompiler()
	schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	if err := compiler.AddResource("config.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("register schema: %w", err)
	}
	schema, err := compiler.Compile("config.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func merge(base, override Config) Config {
	cfg := base
	if override.Listen != "" {
		cfg.Listen = override.Listen
	}
	if override.Environment != "" {
		cfg.Environment = override.Environment
	}
	if override.CurrentVersion != "" {
		cfg.CurrentVersion = override.CurrentVersion
	}
	if override.Releases.Repo != "" {
		cfg.Releases.Repo = override.Releases.Repo
	}
	if override.Releases.CacheTTL != "" {
		cfg.Releases.CacheTTL = override.Releases.CacheTTL
	}
	if override.Roadmap.Repo != "" {
		cfg.Roadmap.Repo = override.Roadmap.Repo
	}
	if override.Roadmap.Path != "" {
		cfg.Roadmap.Path = override.Roadmap.Path
	}
	if override.Roadmap.Ref != "" {
		cfg.Roadmap.Ref = override.Roadmap.Ref
	}
	if override.Roadmap.CacheTTL != "" {
		cfg.Roadmap.CacheTTL = override.Roadmap.CacheTTL
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("MIRASITE_ENV")); env != "" {
		cfg.Environment = env
	}
	if listen := strings.TrimSpace(os.Getenv("MIRASITE_LISTEN")); listen != "" {
		cfg.Listen = listen
	}
}
