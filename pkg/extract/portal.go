package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/models"
)

// Lenient acceptance terms for gov.pl listings. Those pages are already
// environmental sections of RDOŚ/GDOŚ units, so any announcement-shaped
// link qualifies and the full keyword filter runs later in the pipeline.
var portalAnnouncementTerms = []string{
	"obwieszczeni", "zawiadomieni", "postanowieni",
	"decyzj", "znak", "wooś", "dooś", "rdoś",
	"środowisk", "oddziaływan", "przedsięwzięc",
	".420.", ".6220.",
	"ochrony środowiska",
}

var portalSkipTerms = []string{"#", "javascript:", "mailto:", "facebook", "twitter", "katalog-jednostek"}

// portalStrategy parses the gov.pl portal layout used by RDOŚ and GDOŚ.
type portalStrategy struct {
	log *logrus.Logger
}

func (s *portalStrategy) Name() string { return "portal" }

func (s *portalStrategy) Parse(doc *goquery.Document, base *url.URL) []models.CandidateRecord {
	doc.Find("nav, footer, header, .nav, .footer, .header").Remove()

	content := doc.Find("main, .content, #content, article, .article-area").First()
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	if content.Length() == 0 {
		return nil
	}

	var records []models.CandidateRecord
	seen := make(map[string]bool)

	content.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")

		if len([]rune(title)) < 25 {
			return
		}

		hrefLower := strings.ToLower(href)
		for _, skip := range portalSkipTerms {
			if strings.Contains(hrefLower, skip) {
				return
			}
		}

		// Portal content links all live under /web/.
		if !strings.HasPrefix(href, "/web/") {
			return
		}
		fullURL := "https://www.gov.pl" + href
		if seen[fullURL] {
			return
		}
		seen[fullURL] = true

		parentText := title
		if parent := link.Parent(); parent.Length() > 0 {
			if t := strings.TrimSpace(parent.Text()); t != "" {
				parentText = t
			}
		}

		titleLower := strings.ToLower(title)
		isAnnouncement := false
		for _, term := range portalAnnouncementTerms {
			if strings.Contains(titleLower, term) {
				isAnnouncement = true
				break
			}
		}
		if !isAnnouncement {
			return
		}

		snippet := ""
		if parentText != title {
			snippet = truncate(parentText, maxSnippetLen)
		}
		records = append(records, models.CandidateRecord{
			Title:    truncate(title, maxTitleLen),
			URL:      fullURL,
			DateText: dateText(parentText),
			Snippet:  snippet,
		})
	})

	return records
}
