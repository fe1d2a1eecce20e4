// Package crawler walks individual BIP sources, using known-path recipes
// when available and scored discovery otherwise, and aggregates raw
// candidate records across a multi-source run.
package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/config"
	"bip-scraper/pkg/discover"
	"bip-scraper/pkg/extract"
	"bip-scraper/pkg/fetch"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/recipes"
	"bip-scraper/pkg/utils"
)

// Discovery seeds how many scored section links from the front page join
// the crawl frontier.
const sectionSeedCap = 5

// Crawler fetches and parses the pages of a single source.
type Crawler struct {
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	catalog   *recipes.Catalog
	cfg       *config.AppConfig
	log       *logrus.Logger
}

// NewCrawler wires a Crawler from its collaborators.
func NewCrawler(fetcher *fetch.Fetcher, extractor *extract.Extractor, catalog *recipes.Catalog, cfg *config.AppConfig, log *logrus.Logger) *Crawler {
	return &Crawler{
		fetcher:   fetcher,
		extractor: extractor,
		catalog:   catalog,
		cfg:       cfg,
		log:       log,
	}
}

// CrawlSource collects raw candidates from one source. Fetch failures are
// soft: a failed page is skipped, a failed source yields an empty result
// with the error recorded, and neither aborts the run.
func (c *Crawler) CrawlSource(ctx context.Context, source models.Source, stop func() bool) models.SourceResult {
	result := models.SourceResult{SourceID: source.ID, SourceName: source.Name}
	srcLog := c.log.WithFields(logrus.Fields{"source_id": source.ID, "source": source.Name})

	if source.BaseURL() == "" {
		srcLog.Warn("Source has no base URL, skipping")
		return result
	}

	var records []models.CandidateRecord
	if recipe := c.catalog.Resolve(source.ID); recipe != nil {
		records = c.crawlKnownPaths(ctx, source, recipe, stop)
	} else {
		records = c.crawlDiscovery(ctx, source, stop)
	}

	// Tag records with source metadata for the filter pipeline.
	for i := range records {
		records[i].SourceID = source.ID
		records[i].SourceName = source.Name
		records[i].Voivodeship = source.Voivodeship
	}
	result.Records = records

	srcLog.WithField("candidates", len(records)).Debug("Source crawl finished")
	return result
}

// logPageSkip notes a dropped page with its failure category so crawl logs
// can be aggregated by cause.
func (c *Crawler) logPageSkip(pageURL string, err error) {
	c.log.WithFields(logrus.Fields{
		"url":      pageURL,
		"category": utils.CategorizeError(err),
	}).Debug("Page skipped after fetch failure")
}

// joinPath attaches a recipe path to the base URL. Paths are concatenated
// rather than resolved so multi-segment bases keep their prefix.
func joinPath(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(path, "http"):
		return path
	case strings.HasPrefix(path, "/"):
		return base + path
	default:
		return base + "/" + path
	}
}

func (c *Crawler) crawlKnownPaths(ctx context.Context, source models.Source, recipe *models.CrawlRecipe, stop func() bool) []models.CandidateRecord {
	baseURL := source.BaseURL()
	if recipe.BaseURL != "" {
		baseURL = recipe.BaseURL
	}

	var records []models.CandidateRecord
	for _, path := range recipe.Paths {
		if stop() {
			break
		}

		pageURL := joinPath(baseURL, path)
		html, err := c.fetcher.FetchPage(ctx, pageURL)
		if err != nil {
			c.logPageSkip(pageURL, err)
			continue
		}

		pageRecords, err := c.extractor.ParsePage(html, pageURL)
		if err != nil {
			continue
		}
		records = append(records, pageRecords...)

		if recipe.HasPagination {
			records = append(records, c.crawlPagination(ctx, html, pageURL, c.cfg.KnownPathPageCap, nil, stop)...)
		}
	}
	return records
}

func (c *Crawler) crawlDiscovery(ctx context.Context, source models.Source, stop func() bool) []models.CandidateRecord {
	baseURL := source.BaseURL()
	base, err := url.Parse(baseURL)
	if err != nil {
		c.log.WithField("source_id", source.ID).Warnf("Invalid base URL %q: %v", baseURL, err)
		return nil
	}

	visited := make(map[string]bool)
	var frontier []string

	// The catalog's env_path hint is tried first, then the generic paths.
	if source.EnvPath != "" {
		if u, err := base.Parse(source.EnvPath); err == nil {
			frontier = append(frontier, u.String())
		}
	}
	for _, path := range c.catalog.CommonPaths(c.cfg.MaxCommonPaths) {
		if u, err := base.Parse(path); err == nil {
			frontier = append(frontier, u.String())
		}
	}

	// The front page itself is scanned for environmental section links.
	if mainHTML, err := c.fetcher.FetchPage(ctx, baseURL); err == nil {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(mainHTML)); err == nil {
			sections := discover.FindSections(doc, base, c.cfg.MaxDiscoveryLinks)
			if len(sections) > sectionSeedCap {
				sections = sections[:sectionSeedCap]
			}
			frontier = append(frontier, sections...)
		}
	}

	var records []models.CandidateRecord
	for _, pageURL := range frontier {
		if stop() {
			break
		}
		if visited[pageURL] {
			continue
		}
		visited[pageURL] = true

		html, err := c.fetcher.FetchPage(ctx, pageURL)
		if err != nil {
			c.logPageSkip(pageURL, err)
			continue
		}

		pageRecords, err := c.extractor.ParsePage(html, pageURL)
		if err != nil {
			continue
		}
		records = append(records, pageRecords...)

		records = append(records, c.crawlPagination(ctx, html, pageURL, c.cfg.DiscoveryPageCap, visited, stop)...)
	}
	return records
}

// crawlPagination follows further-page links found in html, up to maxPages.
// A nil visited set means pagination URLs are not tracked beyond this call.
func (c *Crawler) crawlPagination(ctx context.Context, html, pageURL string, maxPages int, visited map[string]bool, stop func() bool) []models.CandidateRecord {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var records []models.CandidateRecord
	for _, nextURL := range discover.FindPaginationURLs(doc, base, maxPages) {
		if stop() {
			break
		}
		if visited != nil {
			if visited[nextURL] {
				continue
			}
			visited[nextURL] = true
		}

		nextHTML, err := c.fetcher.FetchPage(ctx, nextURL)
		if err != nil {
			c.logPageSkip(nextURL, err)
			continue
		}
		pageRecords, err := c.extractor.ParsePage(nextHTML, nextURL)
		if err != nil {
			continue
		}
		records = append(records, pageRecords...)
	}
	return records
}
