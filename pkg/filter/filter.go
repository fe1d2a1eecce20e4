package filter

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
)

const maxTitleLen = 200

// FilterByDateRange reports whether a resolved date falls inside [from, to].
// An unresolved (zero) date is rejected under strict mode and accepted under
// lenient mode regardless of the window.
func FilterByDateRange(date time.Time, from, to time.Time, strict bool) bool {
	if date.IsZero() {
		return !strict
	}
	return !date.Before(from) && !date.After(to)
}

// LocationLabel builds the display location from source metadata.
func LocationLabel(sourceName, voivodeship string) string {
	if sourceName != "" && voivodeship != "" {
		return fmt.Sprintf("%s, woj. %s", sourceName, voivodeship)
	}
	if sourceName != "" {
		return sourceName
	}
	return "unknown"
}

// ResultFilter turns raw candidate records into classified records, applying
// the acceptance, date-window and industry filters configured at build time.
type ResultFilter struct {
	classifier  *Classifier
	from        time.Time
	to          time.Time
	industries  map[Industry]bool // empty means no industry filtering
	strictDates bool
	log         *logrus.Logger
}

// NewResultFilter builds a filter for one search. An empty industries slice
// disables industry filtering entirely, which also keeps "other" visible.
func NewResultFilter(classifier *Classifier, from, to time.Time, industries []Industry, strictDates bool, log *logrus.Logger) *ResultFilter {
	requested := make(map[Industry]bool, len(industries))
	for _, ind := range industries {
		requested[ind] = true
	}
	return &ResultFilter{
		classifier:  classifier,
		from:        from,
		to:          to,
		industries:  requested,
		strictDates: strictDates,
		log:         log,
	}
}

// Process classifies a single raw candidate. Returns nil when the candidate
// is rejected at any step.
func (f *ResultFilter) Process(raw models.CandidateRecord) *models.ClassifiedRecord {
	fullText := raw.Title + " " + raw.Snippet

	if !f.classifier.IsEnvironmentalDecision(fullText) {
		return nil
	}

	// Prefer the explicit date field, then fall back to the combined text.
	date, ok := parse.ExtractDate(raw.DateText)
	if !ok {
		date, _ = parse.ExtractDate(fullText)
	}

	if !FilterByDateRange(date, f.from, f.to, f.strictDates) {
		f.log.WithFields(logrus.Fields{
			"url":  raw.URL,
			"date": date.Format("2006-01-02"),
		}).Debug("Candidate outside date window")
		return nil
	}

	industries := f.classifier.ClassifyIndustry(fullText)
	if len(f.industries) > 0 {
		matchesRequested := false
		for _, ind := range industries {
			if f.industries[ind] {
				matchesRequested = true
				break
			}
		}
		if !matchesRequested {
			return nil
		}
	}

	stage := f.classifier.DetectStage(fullText)
	signature := parse.ExtractSignature(fullText)
	if signature == "" {
		signature = "unknown"
	}

	title := raw.Title
	if len([]rune(title)) > maxTitleLen {
		title = string([]rune(title)[:maxTitleLen])
	}
	if title == "" {
		title = "unknown"
	}

	tags := make([]string, len(industries))
	for i, ind := range industries {
		tags[i] = string(ind)
	}

	return &models.ClassifiedRecord{
		Location:   LocationLabel(raw.SourceName, raw.Voivodeship),
		Date:       date,
		Stage:      string(stage),
		Industries: tags,
		Title:      title,
		Signature:  signature,
		SourceURL:  raw.URL,
		SourceName: raw.SourceName,
	}
}

// FilterAll maps Process over every raw candidate, drops rejections, and
// sorts the survivors by announcement date descending with undated records
// last. The sort is stable so records sharing a date keep crawl order.
func (f *ResultFilter) FilterAll(raws []models.CandidateRecord) []models.ClassifiedRecord {
	out := make([]models.ClassifiedRecord, 0, len(raws))
	for _, raw := range raws {
		if rec := f.Process(raw); rec != nil {
			out = append(out, *rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Date, out[j].Date
		if di.IsZero() {
			return false
		}
		if dj.IsZero() {
			return true
		}
		return di.After(dj)
	})

	f.log.WithFields(logrus.Fields{
		"input":    len(raws),
		"accepted": len(out),
	}).Info("Filtering complete")

	return out
}
