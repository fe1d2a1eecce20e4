package filter

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bip-scraper/pkg/models"
)

func newTestFilter(t *testing.T, from, to time.Time, industries []Industry, strict bool) *ResultFilter {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewResultFilter(NewClassifier(), from, to, industries, strict, log)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByDateRange(t *testing.T) {
	from, to := date(2026, 1, 1), date(2026, 3, 31)

	assert.True(t, FilterByDateRange(date(2026, 1, 15), from, to, true))
	assert.True(t, FilterByDateRange(from, from, to, true))
	assert.True(t, FilterByDateRange(to, from, to, true))
	assert.False(t, FilterByDateRange(date(2025, 12, 31), from, to, true))
	assert.False(t, FilterByDateRange(date(2026, 4, 1), from, to, true))

	// Undated records are a strictness decision, not a window decision.
	assert.False(t, FilterByDateRange(time.Time{}, from, to, true))
	assert.True(t, FilterByDateRange(time.Time{}, from, to, false))
}

func TestLocationLabel(t *testing.T) {
	assert.Equal(t, "Gmina Lipka, woj. wielkopolskie", LocationLabel("Gmina Lipka", "wielkopolskie"))
	assert.Equal(t, "Gmina Lipka", LocationLabel("Gmina Lipka", ""))
	assert.Equal(t, "unknown", LocationLabel("", ""))
}

func TestProcess_AcceptsInitiationNotice(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 3, 31), nil, true)

	raw := models.CandidateRecord{
		Title:       "Obwieszczenie o wszczęciu postępowania w sprawie wydania decyzji o środowiskowych uwarunkowaniach dla budowy farmy fotowoltaicznej",
		URL:         "https://bip.lipka.pl/wiadomosci?id=41",
		DateText:    "15.01.2026",
		SourceName:  "Gmina Lipka",
		Voivodeship: "wielkopolskie",
	}

	rec := f.Process(raw)
	require.NotNil(t, rec)
	assert.Equal(t, date(2026, 1, 15), rec.Date)
	assert.Equal(t, string(StageInitiation), rec.Stage)
	assert.Equal(t, []string{string(IndustryRenewables)}, rec.Industries)
	assert.Equal(t, "Gmina Lipka, woj. wielkopolskie", rec.Location)
	assert.Equal(t, "unknown", rec.Signature)
	assert.Equal(t, raw.URL, rec.SourceURL)
}

func TestProcess_RejectsBlacklisted(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 3, 31), nil, true)

	rec := f.Process(models.CandidateRecord{
		Title:    "Program ochrony środowiska dla gminy na lata 2026-2030",
		DateText: "20.01.2026",
	})
	assert.Nil(t, rec)
}

func TestProcess_DateFallsBackToText(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 3, 31), nil, true)

	rec := f.Process(models.CandidateRecord{
		Title:   "Obwieszczenie o wydaniu decyzji o środowiskowych uwarunkowaniach",
		Snippet: "Wydano decyzję WGK.6220.1.2026 w dniu 10 lutego 2026 r.",
	})
	require.NotNil(t, rec)
	assert.Equal(t, date(2026, 2, 10), rec.Date)
	assert.Equal(t, "WGK.6220.1.2026", rec.Signature)
	assert.Equal(t, string(StageDecision), rec.Stage)
}

func TestProcess_UnresolvableDate(t *testing.T) {
	raw := models.CandidateRecord{
		Title:    "Obwieszczenie o wszczęciu postępowania w sprawie wydania decyzji o środowiskowych uwarunkowaniach",
		DateText: "2026-13-40",
	}

	strict := newTestFilter(t, date(2026, 1, 1), date(2026, 3, 31), nil, true)
	assert.Nil(t, strict.Process(raw))

	lenient := newTestFilter(t, date(2026, 1, 1), date(2026, 3, 31), nil, false)
	rec := lenient.Process(raw)
	require.NotNil(t, rec)
	assert.False(t, rec.HasDate())
	assert.Equal(t, "unknown", rec.DateLabel())
}

func TestProcess_IndustryFilter(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 12, 31), []Industry{IndustryRenewables}, true)

	kept := f.Process(models.CandidateRecord{
		Title:    "Wszczęcie postępowania dla budowy hali magazynowej z instalacją fotowoltaiczną",
		DateText: "10.02.2026",
	})
	require.NotNil(t, kept)
	assert.Contains(t, kept.Industries, string(IndustryRenewables))

	dropped := f.Process(models.CandidateRecord{
		Title:    "Wszczęcie postępowania dla budowy hali magazynowej",
		DateText: "10.02.2026",
	})
	assert.Nil(t, dropped)
}

func TestProcess_TruncatesLongTitle(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 12, 31), nil, true)

	long := "Obwieszczenie o wszczęciu postępowania " + strings.Repeat("ą", 300)
	rec := f.Process(models.CandidateRecord{Title: long, DateText: "10.02.2026"})
	require.NotNil(t, rec)
	assert.Equal(t, maxTitleLen, len([]rune(rec.Title)))
}

func TestFilterAll_SortsByDateDescending(t *testing.T) {
	f := newTestFilter(t, date(2026, 1, 1), date(2026, 12, 31), nil, false)

	raws := []models.CandidateRecord{
		{Title: "Wszczęcie postępowania A", DateText: "15.01.2026", URL: "https://a.pl/1"},
		{Title: "Wszczęcie postępowania B", URL: "https://a.pl/2"}, // undated
		{Title: "Wszczęcie postępowania C", DateText: "01.02.2026", URL: "https://a.pl/3"},
	}

	out := f.FilterAll(raws)
	require.Len(t, out, 3)
	assert.Equal(t, "https://a.pl/3", out[0].SourceURL)
	assert.Equal(t, "https://a.pl/1", out[1].SourceURL)
	assert.Equal(t, "https://a.pl/2", out[2].SourceURL)
}
