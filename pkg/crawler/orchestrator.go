package crawler

import (
	"context"

	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
	"bip-scraper/pkg/storage"
)

// ProgressFunc reports run progress after each source: sources completed so
// far, total sources, and the name of the source just finished.
type ProgressFunc func(current, total int, sourceName string)

// StopFunc is polled between sources and between page fetches; returning
// true halts the crawl while keeping the results collected so far.
type StopFunc func() bool

// Orchestrator runs the multi-source crawl sequentially and deduplicates
// candidates by normalized URL across the whole run. The cross-run seen
// store holds accepted URLs only: a candidate rejected by this run's filter
// stays eligible for later runs with different criteria.
type Orchestrator struct {
	crawler *Crawler
	seen    storage.SeenStore
	log     *logrus.Logger
}

// NewOrchestrator creates an Orchestrator. The seen store spans runs when
// backed by disk; the caller owns its lifecycle.
func NewOrchestrator(crawler *Crawler, seen storage.SeenStore, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{crawler: crawler, seen: seen, log: log}
}

// CrawlAll walks every source in order and returns the merged, deduplicated
// raw candidates. Per-source failures are logged and skipped; a stop request
// or context cancellation returns partial results without error.
func (o *Orchestrator) CrawlAll(ctx context.Context, sources []models.Source, progress ProgressFunc, stop StopFunc) []models.CandidateRecord {
	if stop == nil {
		stop = func() bool { return false }
	}

	var all []models.CandidateRecord
	runSeen := make(map[string]bool)
	total := len(sources)

	for i, source := range sources {
		if stop() || ctx.Err() != nil {
			o.log.Info("Crawl stopped on request, keeping partial results")
			break
		}

		result := o.crawler.CrawlSource(ctx, source, stop)
		if result.Err != nil {
			o.log.WithField("source", source.Name).Warnf("Source crawl failed: %v", result.Err)
		}

		for _, record := range result.Records {
			normalized, _, err := parse.ParseAndNormalize(record.URL)
			if err != nil {
				normalized = record.URL
			}
			if runSeen[normalized] {
				continue
			}
			runSeen[normalized] = true

			if o.seen != nil {
				seen, err := o.seen.WasSeen(normalized)
				if err != nil {
					o.log.Warnf("Seen store error for %s: %v", normalized, err)
				} else if seen {
					continue // accepted in a previous run
				}
			}
			all = append(all, record)
		}

		if progress != nil {
			progress(i+1, total, source.Name)
		}
	}

	o.log.WithFields(logrus.Fields{
		"sources":    total,
		"candidates": len(all),
	}).Info("Crawl complete")
	return all
}

// MarkAccepted records the final, filter-accepted records in the cross-run
// seen store. Called after the filter pipeline so rejected candidates remain
// visible to later runs whose date window or industry set would accept them.
func (o *Orchestrator) MarkAccepted(records []models.ClassifiedRecord) {
	if o.seen == nil {
		return
	}
	for _, record := range records {
		normalized, _, err := parse.ParseAndNormalize(record.SourceURL)
		if err != nil {
			normalized = record.SourceURL
		}
		if _, err := o.seen.MarkSeen(normalized); err != nil {
			o.log.Warnf("Seen store error for %s: %v", normalized, err)
		}
	}
}
