package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
)

// Item selectors tried in order; the first one that matches anything wins.
var listSelectors = []string{
	".news-list li",
	".article-list li",
	".document-list li",
	".ogloszenia-lista li",
	"ul.list li",
	".content li",
	`div[class*="news"] li`,
	`div[class*="ogloszeni"] li`,
	".entry",
	"article",
}

// listStrategy parses news-style BIP pages where announcements appear as
// list items or article blocks. Falls back to scanning every anchor when no
// list structure is recognized.
type listStrategy struct {
	classifier *filter.Classifier
}

func (s *listStrategy) Name() string { return "list" }

func (s *listStrategy) Parse(doc *goquery.Document, base *url.URL) []models.CandidateRecord {
	doc.Find("script, style, nav, footer, header").Remove()

	var items *goquery.Selection
	for _, selector := range listSelectors {
		found := doc.Find(selector)
		if found.Length() > 0 {
			items = found
			break
		}
	}

	var records []models.CandidateRecord

	appendRecord := func(title, href, context string) {
		if len([]rune(title)) < 15 {
			return
		}
		fullURL := parse.ResolveHref(base, href)
		if fullURL == "" {
			return
		}
		combined := title + " " + context
		if !s.classifier.IsEnvironmentalDecision(combined) {
			return
		}
		dateSource := context
		if dateSource == "" {
			dateSource = title
		}
		records = append(records, models.CandidateRecord{
			Title:    truncate(title, maxTitleLen),
			URL:      fullURL,
			DateText: dateText(dateSource),
			Snippet:  truncate(context, maxSnippetLen),
		})
	}

	if items != nil {
		items.Each(func(_ int, item *goquery.Selection) {
			link := item.Find("a[href]").First()
			if link.Length() == 0 {
				return
			}
			href, _ := link.Attr("href")
			appendRecord(strings.TrimSpace(link.Text()), href, strings.TrimSpace(item.Text()))
		})
		return records
	}

	// No recognizable list structure; scan bare anchors.
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		context := ""
		if parent := link.Parent(); parent.Length() > 0 {
			context = strings.TrimSpace(parent.Text())
		}
		appendRecord(strings.TrimSpace(link.Text()), href, context)
	})
	return records
}
