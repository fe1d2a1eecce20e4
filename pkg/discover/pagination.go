package discover

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"bip-scraper/pkg/parse"
)

// Pagination selectors covering the CMSes seen across BIP sites, including
// the Polish "strona=" query parameter.
var paginationSelectors = []string{
	".pagination a",
	".pager a",
	".pages a",
	`a[href*="page="]`,
	`a[href*="strona="]`,
	`a[href*="PageNo="]`,
	"a.next",
	`a[rel="next"]`,
}

// FindPaginationURLs collects further-page links from a listing page, up to
// maxPages distinct URLs. The page's own URL is excluded.
func FindPaginationURLs(doc *goquery.Document, base *url.URL, maxPages int) []string {
	if maxPages <= 0 {
		return nil
	}

	baseStr := base.String()
	seen := make(map[string]bool)
	var pages []string

	for _, selector := range paginationSelectors {
		doc.Find(selector).Each(func(_ int, link *goquery.Selection) {
			if len(pages) >= maxPages {
				return
			}
			href, _ := link.Attr("href")
			fullURL := parse.ResolveHref(base, href)
			if fullURL == "" || fullURL == baseStr || seen[fullURL] {
				return
			}
			seen[fullURL] = true
			pages = append(pages, fullURL)
		})
		if len(pages) >= maxPages {
			break
		}
	}
	return pages
}
