// Package recipes resolves pre-verified crawl plans for sources whose
// environmental sections have already been located by hand.
package recipes

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/models"
	"bip-scraper/pkg/utils"
)

// knownConfig is the per-source entry shape shared by the verified sections.
type knownConfig struct {
	EnvPaths      []string `json:"env_paths"`
	HasPagination bool     `json:"has_pagination"`
}

// authorityConfig is the entry shape of the rdos_paths and gdos_paths
// sections, which may key paths by year and override the base URL.
type authorityConfig struct {
	Paths       []string          `json:"paths"`
	PathsByYear map[string]string `json:"paths_by_year"`
	BaseURL     string            `json:"base_url"`
}

// Catalog holds the parsed known-paths file. Sections are consulted in
// priority order: verified_sources, verified_sources_extra, verified_gminy,
// rdos_paths, gdos_paths.
type Catalog struct {
	VerifiedSources      map[string]knownConfig     `json:"verified_sources"`
	VerifiedSourcesExtra map[string]knownConfig     `json:"verified_sources_extra"`
	VerifiedGminy        map[string]knownConfig     `json:"verified_gminy"`
	RDOSPaths            map[string]authorityConfig `json:"rdos_paths"`
	GDOSPaths            map[string]authorityConfig `json:"gdos_paths"`
	DiscoveryPatterns    struct {
		CommonPathsToTry []string `json:"common_paths_to_try"`
	} `json:"discovery_patterns"`

	now func() time.Time
	log *logrus.Logger
}

// Load parses the known-paths catalog. A missing file is not an error: every
// source then falls back to discovery mode.
func Load(path string, log *logrus.Logger) (*Catalog, error) {
	catalog := &Catalog{now: time.Now, log: log}
	if path == "" {
		log.Info("No known-paths catalog configured, all sources use discovery mode")
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Warn("Known-paths catalog not found, all sources use discovery mode")
			return catalog, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", utils.ErrCatalogLoad, path, err)
	}

	if err := json.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("%w: JSON parse of %s: %w", utils.ErrCatalogLoad, path, err)
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"verified": len(catalog.VerifiedSources) + len(catalog.VerifiedSourcesExtra) + len(catalog.VerifiedGminy),
		"rdos":     len(catalog.RDOSPaths),
		"gdos":     len(catalog.GDOSPaths),
	}).Info("Known-paths catalog loaded")
	return catalog, nil
}

// CommonPaths returns the generic paths tried during discovery, capped at
// limit.
func (c *Catalog) CommonPaths(limit int) []string {
	paths := c.DiscoveryPatterns.CommonPathsToTry
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths
}

// Resolve returns the crawl recipe for a source ID, or nil when the source
// is unknown and must be crawled by discovery. RDOŚ entries keyed by year
// resolve to the current and previous year's paths.
func (c *Catalog) Resolve(sourceID string) *models.CrawlRecipe {
	if cfg, ok := c.VerifiedSources[sourceID]; ok {
		return &models.CrawlRecipe{Paths: cfg.EnvPaths, HasPagination: cfg.HasPagination}
	}
	if cfg, ok := c.VerifiedSourcesExtra[sourceID]; ok {
		return &models.CrawlRecipe{Paths: cfg.EnvPaths, HasPagination: cfg.HasPagination}
	}
	if cfg, ok := c.VerifiedGminy[sourceID]; ok {
		return &models.CrawlRecipe{Paths: cfg.EnvPaths, HasPagination: cfg.HasPagination}
	}
	if cfg, ok := c.RDOSPaths[sourceID]; ok {
		paths := cfg.Paths
		if len(cfg.PathsByYear) > 0 {
			year := c.now().Year()
			paths = nil
			for _, y := range []int{year, year - 1} {
				if p, ok := cfg.PathsByYear[fmt.Sprintf("%d", y)]; ok && p != "" {
					paths = append(paths, p)
				}
			}
		}
		return &models.CrawlRecipe{Paths: paths, BaseURL: cfg.BaseURL}
	}
	if cfg, ok := c.GDOSPaths[sourceID]; ok {
		return &models.CrawlRecipe{Paths: cfg.Paths, BaseURL: cfg.BaseURL}
	}
	return nil
}
