package models

import (
	"strings"
	"time"
)

// Source describes one BIP site to crawl. Loaded once from the source catalog
// at crawl start and never mutated during a run.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Voivodeship string `json:"voivodeship"`
	BIPURL      string `json:"bip_url"`
	URL         string `json:"url,omitempty"`      // fallback when bip_url is absent
	EnvPath     string `json:"env_path,omitempty"` // known environmental-section path, if any
	Type        string `json:"type,omitempty"`
}

// BaseURL returns the crawlable base URL for the source, preferring bip_url.
func (s Source) BaseURL() string {
	if s.BIPURL != "" {
		return s.BIPURL
	}
	return s.URL
}

// CrawlRecipe is a pre-verified crawl plan for a single source: an ordered list
// of relative paths known to lead to announcement listings, plus whether those
// pages paginate. Resolved once per source; never mutated.
type CrawlRecipe struct {
	Paths         []string
	HasPagination bool
	BaseURL       string // non-empty when the recipe overrides the source base URL
}

// CandidateRecord is a raw item produced by a page-parsing strategy. It lives
// only until the filter pipeline accepts or discards it.
type CandidateRecord struct {
	Title       string
	URL         string
	DateText    string
	Snippet     string
	SourceID    string
	SourceName  string
	Voivodeship string
}

// ScoredLink pairs a discovered same-domain URL with its relevance score.
// Produced and consumed within one discovery pass.
type ScoredLink struct {
	URL   string
	Score int
}

// ClassifiedRecord is the final, externally visible unit: a validated,
// date-bounded, industry- and stage-tagged announcement. Immutable once built.
type ClassifiedRecord struct {
	Location   string
	Date       time.Time // zero when no date could be resolved
	Stage      string
	Industries []string
	Title      string
	Signature  string
	SourceURL  string
	SourceName string

	// Secondary-verification annotations; zero values until verified.
	Verified     bool
	Valid        bool
	Confidence   float64
	VerifyReason string
}

// HasDate reports whether an announcement date was resolved.
func (r ClassifiedRecord) HasDate() bool { return !r.Date.IsZero() }

// DateLabel returns the announcement date as YYYY-MM-DD, or "unknown".
func (r ClassifiedRecord) DateLabel() string {
	if r.Date.IsZero() {
		return "unknown"
	}
	return r.Date.Format("2006-01-02")
}

// IndustryLabel returns the comma-joined industry tags.
func (r ClassifiedRecord) IndustryLabel() string {
	return strings.Join(r.Industries, ", ")
}

// SourceResult aggregates the raw candidates collected from a single source,
// with a soft error when the source could not be crawled at all.
type SourceResult struct {
	SourceID   string
	SourceName string
	Records    []CandidateRecord
	Err        error
}
