// Package search glues catalog loading, crawling, filtering and optional
// verification into one run driven by a session.
package search

import (
	"context"

	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/config"
	"bip-scraper/pkg/crawler"
	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/session"
	"bip-scraper/pkg/sources"
	"bip-scraper/pkg/verify"
)

// Runner executes search sessions against a fixed component wiring.
type Runner struct {
	cfg          *config.AppConfig
	orchestrator *crawler.Orchestrator
	classifier   *filter.Classifier
	verifier     *verify.Verifier // nil when verification is disabled
	log          *logrus.Logger
}

// NewRunner wires a Runner.
func NewRunner(cfg *config.AppConfig, orchestrator *crawler.Orchestrator, classifier *filter.Classifier, verifier *verify.Verifier, log *logrus.Logger) *Runner {
	return &Runner{
		cfg:          cfg,
		orchestrator: orchestrator,
		classifier:   classifier,
		verifier:     verifier,
		log:          log,
	}
}

// Run performs a full search for the session: load and narrow the catalog,
// crawl, classify, optionally verify, and store the final records on the
// session. Returns the final records.
func (r *Runner) Run(ctx context.Context, sess *session.Session) ([]models.ClassifiedRecord, error) {
	sess.Start()
	params := sess.Params

	all, err := sources.Load(r.cfg.SourcesFile, r.log)
	if err != nil {
		sess.Fail(err)
		return nil, err
	}
	selected := sources.FilterByProfile(all, params.Profile)
	selected = sources.FilterByVoivodeship(selected, params.Voivodeships)
	r.log.WithFields(logrus.Fields{
		"profile":  params.Profile,
		"selected": len(selected),
		"total":    len(all),
	}).Info("Sources selected for crawl")

	raw := r.orchestrator.CrawlAll(ctx, selected, sess.SetProgress, sess.StopRequested)

	resultFilter := filter.NewResultFilter(
		r.classifier,
		params.DateFrom, params.DateTo,
		params.Industries,
		r.cfg.StrictDateFiltering(),
		r.log,
	)
	classified := resultFilter.FilterAll(raw)

	if r.verifier != nil && params.UseVerifier {
		sess.SetVerifying(len(classified))
		criteria := verify.Criteria{
			DateFrom: params.DateFrom.Format("2006-01-02"),
			DateTo:   params.DateTo.Format("2006-01-02"),
		}
		for _, ind := range params.Industries {
			criteria.Industries = append(criteria.Industries, string(ind))
		}
		classified = r.verifier.VerifyAll(ctx, classified, criteria, func(batch, total int) {
			r.log.WithFields(logrus.Fields{"batch": batch, "total": total}).Info("Verifying batch")
		})
	}

	// Only records surfaced to the user count as seen for future runs.
	r.orchestrator.MarkAccepted(classified)

	sess.Complete(classified)
	return classified, nil
}
