package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
)

// tableStrategy parses register-style BIP pages where each announcement is a
// table row with a link and, usually, a date column.
type tableStrategy struct {
	classifier *filter.Classifier
}

func (s *tableStrategy) Name() string { return "table" }

func (s *tableStrategy) Parse(doc *goquery.Document, base *url.URL) []models.CandidateRecord {
	var records []models.CandidateRecord

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		link := row.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}

		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")

		if len([]rune(title)) < 10 {
			// Short or empty link text; use the whole row instead.
			var parts []string
			cells.Each(func(_ int, cell *goquery.Selection) {
				if t := strings.TrimSpace(cell.Text()); t != "" {
					parts = append(parts, t)
				}
			})
			title = strings.Join(parts, " ")
		}
		if len([]rune(title)) < 10 {
			return
		}

		fullURL := parse.ResolveHref(base, href)
		if fullURL == "" {
			return
		}

		rowText := strings.TrimSpace(row.Text())
		if !s.classifier.IsEnvironmentalDecision(title) {
			return
		}

		records = append(records, models.CandidateRecord{
			Title:    truncate(title, maxTitleLen),
			URL:      fullURL,
			DateText: dateText(rowText),
			Snippet:  truncate(rowText, maxSnippetLen),
		})
	})

	return records
}
