// Package extract turns fetched HTML listing pages into raw candidate
// records. Three strategies cover the page shapes seen across BIP sites:
// the gov.pl portal layout, table-based registers, and news-style lists.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
	"bip-scraper/pkg/utils"
)

const (
	maxTitleLen   = 300
	maxSnippetLen = 500
)

// Strategy parses one page layout into candidate records.
type Strategy interface {
	Name() string
	Parse(doc *goquery.Document, base *url.URL) []models.CandidateRecord
}

// Extractor dispatches pages to the right strategy. gov.pl pages always use
// the portal strategy; everything else tries the table strategy first and
// falls back to the list strategy when no rows produce records.
type Extractor struct {
	portal Strategy
	table  Strategy
	list   Strategy
	log    *logrus.Logger
}

// NewExtractor builds an Extractor sharing one keyword classifier across
// strategies.
func NewExtractor(classifier *filter.Classifier, log *logrus.Logger) *Extractor {
	return &Extractor{
		portal: &portalStrategy{log: log},
		table:  &tableStrategy{classifier: classifier},
		list:   &listStrategy{classifier: classifier},
		log:    log,
	}
}

// ParsePage parses listing HTML fetched from pageURL into candidate records.
func (e *Extractor) ParsePage(html, pageURL string) ([]models.CandidateRecord, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid page URL %q: %w", utils.ErrParsing, pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: HTML parse failed for %s: %w", utils.ErrParsing, pageURL, err)
	}

	var records []models.CandidateRecord
	var strategy Strategy
	switch {
	case strings.Contains(base.Hostname(), "gov.pl"):
		strategy = e.portal
		records = strategy.Parse(doc, base)
	default:
		strategy = e.table
		records = strategy.Parse(doc, base)
		if len(records) == 0 {
			strategy = e.list
			records = strategy.Parse(doc, base)
		}
	}

	e.log.WithFields(logrus.Fields{
		"url":      pageURL,
		"strategy": strategy.Name(),
		"records":  len(records),
	}).Debug("Parsed listing page")
	return records, nil
}

// dateText extracts the first valid date from text and renders it in the
// DD.MM.YYYY form carried through candidate records.
func dateText(text string) string {
	date, ok := parse.ExtractDate(text)
	if !ok {
		return ""
	}
	return date.Format("02.01.2006")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
