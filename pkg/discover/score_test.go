package discover

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestScoreLink(t *testing.T) {
	tests := []struct {
		name string
		text string
		href string
		want int
	}{
		{"high plus medium text", "decyzje środowiskowe", "/wykaz", 15},
		{"high href", "zobacz", "/srodowisko/wykaz", 8},
		{"medium text", "obwieszczenia", "/lista", 5},
		{"medium href", "więcej", "/obwieszczenia-urzedowe", 4},
		{"low text", "tablica ogłoszeń", "/x", 2},
		{"low href", "więcej", "/komunikaty", 1},
		{"no signal", "kontakt", "/kontakt", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLink(tt.text, tt.href))
		})
	}
}

func TestScoreLink_TiersAccumulate(t *testing.T) {
	// Text and href signals add up rather than shadowing each other.
	got := ScoreLink("decyzje środowiskowe", "/srodowisko/decyzje")
	assert.Equal(t, 10+8+5+4, got)
}

func TestFindSections_RanksAndFilters(t *testing.T) {
	html := `<html><body>
		<a href="/oferty-pracy">Oferty pracy</a>
		<a href="/ogloszenia">Tablica ogłoszeń</a>
		<a href="/srodowisko/decyzje">Decyzje środowiskowe</a>
		<a href="/obwieszczenia">Obwieszczenia</a>
		<a href="https://www.facebook.com/gmina">Obwieszczenia na Facebooku</a>
		<a href="https://external.example.com/srodowisko">Decyzje środowiskowe innej gminy</a>
	</body></html>`

	base := mustParse(t, "https://bip.example.pl/")
	got := FindSections(parseDoc(t, html), base, 10)

	require.Len(t, got, 3)
	assert.Equal(t, "https://bip.example.pl/srodowisko/decyzje", got[0])
	assert.Equal(t, "https://bip.example.pl/obwieszczenia", got[1])
	assert.Equal(t, "https://bip.example.pl/ogloszenia", got[2])
}

func TestFindSections_CapAndDedup(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	// Same link repeated plus a spread of distinct ones.
	for i := 0; i < 3; i++ {
		b.WriteString(`<a href="/srodowisko">Decyzje środowiskowe</a>`)
	}
	b.WriteString(`<a href="/obwieszczenia">Obwieszczenia</a>`)
	b.WriteString(`<a href="/komunikaty">Komunikaty</a>`)
	b.WriteString("</body></html>")

	base := mustParse(t, "https://bip.example.pl/")
	got := FindSections(parseDoc(t, b.String()), base, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "https://bip.example.pl/srodowisko", got[0])
	assert.Equal(t, "https://bip.example.pl/obwieszczenia", got[1])
}

func TestFindSections_WWWPrefixIsSameDomain(t *testing.T) {
	html := `<a href="https://www.bip.example.pl/srodowisko">Decyzje środowiskowe</a>`
	base := mustParse(t, "https://bip.example.pl/")
	got := FindSections(parseDoc(t, html), base, 10)
	require.Len(t, got, 1)
}
