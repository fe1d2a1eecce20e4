// Package discover finds environmental sections and pagination links on
// pages whose structure is unknown, using keyword-scored link ranking.
package discover

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bip-scraper/pkg/models"
	"bip-scraper/pkg/parse"
)

// DefaultMaxSectionLinks caps how many scored section links a single page
// may contribute to the crawl frontier.
const DefaultMaxSectionLinks = 15

// Link-text tiers. High-tier phrases point directly at environmental
// decision registers; low-tier ones are generic announcement boards that
// sometimes carry them.
var (
	highPriorityText = []string{
		"decyzje środowiskowe", "decyzji środowiskowych",
		"środowiskowych uwarunkowań", "uwarunkowań środowiskowych",
		"karty informacyjne", "wykaz danych o środowisku",
		"publicznie dostępny wykaz", "6220",
	}
	mediumPriorityText = []string{
		"ochrona środowiska", "ochrony środowiska",
		"obwieszczenia", "decyzje", "środowisk",
	}
	lowPriorityText = []string{
		"ogłoszenia", "tablica", "komunikaty",
		"ekolog", "klimat", "aktualności",
	}

	highPriorityHref   = []string{"srodowisk", "environment", "6220", "karty-informacyjne"}
	mediumPriorityHref = []string{"obwieszcz", "decyzj", "ochrona"}
	lowPriorityHref    = []string{"oglosz", "tablica", "komunikat"}

	skipHrefTerms = []string{"#", "javascript:", "mailto:", "facebook", "twitter"}
)

const (
	highTextScore   = 10
	highHrefScore   = 8
	mediumTextScore = 5
	mediumHrefScore = 4
	lowTextScore    = 2
	lowHrefScore    = 1
)

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// ScoreLink rates a single anchor by its visible text and href. Zero means
// the link carries no environmental signal.
func ScoreLink(text, href string) int {
	score := 0
	if containsAny(text, highPriorityText) {
		score += highTextScore
	}
	if containsAny(href, highPriorityHref) {
		score += highHrefScore
	}
	if containsAny(text, mediumPriorityText) {
		score += mediumTextScore
	}
	if containsAny(href, mediumPriorityHref) {
		score += mediumHrefScore
	}
	if containsAny(text, lowPriorityText) {
		score += lowTextScore
	}
	if containsAny(href, lowPriorityHref) {
		score += lowHrefScore
	}
	return score
}

// FindSections scans every anchor on a page, scores it, and returns up to
// maxLinks same-domain URLs ordered best-first. The sort is stable so links
// with equal scores keep document order.
func FindSections(doc *goquery.Document, base *url.URL, maxLinks int) []string {
	if maxLinks <= 0 {
		maxLinks = DefaultMaxSectionLinks
	}

	var scored []models.ScoredLink
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		hrefLower := strings.ToLower(href)
		if containsAny(hrefLower, skipHrefTerms) {
			return
		}
		text := strings.ToLower(strings.TrimSpace(link.Text()))

		score := ScoreLink(text, hrefLower)
		if score <= 0 {
			return
		}

		fullURL := parse.ResolveHref(base, href)
		if fullURL == "" {
			return
		}
		target, err := url.Parse(fullURL)
		if err != nil || !parse.SameDomain(target.Hostname(), base.Hostname()) {
			return
		}
		scored = append(scored, models.ScoredLink{URL: fullURL, Score: score})
	})

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	seen := make(map[string]bool, len(scored))
	var out []string
	for _, link := range scored {
		if seen[link.URL] {
			continue
		}
		seen[link.URL] = true
		out = append(out, link.URL)
		if len(out) >= maxLinks {
			break
		}
	}
	return out
}
