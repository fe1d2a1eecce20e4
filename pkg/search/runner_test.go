package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bip-scraper/pkg/config"
	"bip-scraper/pkg/crawler"
	"bip-scraper/pkg/extract"
	"bip-scraper/pkg/fetch"
	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/recipes"
	"bip-scraper/pkg/session"
	"bip-scraper/pkg/storage"
)

// bipSite serves a discovery-shaped BIP: a front page linking to an
// announcements section with one in-window hit, one stale entry and one
// blacklisted document.
func bipSite() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><a href="/obwieszczenia">Obwieszczenia</a></body></html>`)
	})
	mux.HandleFunc("/obwieszczenia", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><table>
			<tr><td><a href="/obwieszczenia?id=1">Obwieszczenie o wszczęciu postępowania w sprawie wydania decyzji o środowiskowych uwarunkowaniach dla farmy fotowoltaicznej</a></td><td>15.01.2026</td></tr>
			<tr><td><a href="/obwieszczenia?id=2">Obwieszczenie o wydaniu decyzji o środowiskowych uwarunkowaniach dla kopalni kruszywa</a></td><td>15.01.2025</td></tr>
			<tr><td><a href="/obwieszczenia?id=3">Program ochrony środowiska dla gminy na lata 2026-2030</a></td><td>20.01.2026</td></tr>
		</table></body></html>`)
	})
	return mux
}

func newTestRunner(t *testing.T, baseURL string) *Runner {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	sourcesPath := filepath.Join(t.TempDir(), "sources.json")
	catalogJSON := `{"gminy_wiejskie": [{"id": "gw-lipka", "name": "Gmina Lipka", "voivodeship": "wielkopolskie", "bip_url": "` + baseURL + `"}]}`
	require.NoError(t, os.WriteFile(sourcesPath, []byte(catalogJSON), 0o644))

	cfg := &config.AppConfig{SourcesFile: sourcesPath}
	_, err := cfg.Validate()
	require.NoError(t, err)

	knownPaths, err := recipes.Load("", log)
	require.NoError(t, err)

	classifier := filter.NewClassifier()
	fetcher := fetch.NewFetcher(http.DefaultClient, fetch.NewRateLimiter(0, log), cfg.MaxConcurrent, nil, log)
	extractor := extract.NewExtractor(classifier, log)
	c := crawler.NewCrawler(fetcher, extractor, knownPaths, cfg, log)
	o := crawler.NewOrchestrator(c, storage.NewMemoryStore(), log)

	return NewRunner(cfg, o, classifier, nil, log)
}

func TestRun_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(bipSite())
	defer srv.Close()

	runner := newTestRunner(t, srv.URL)
	sess := session.New(session.Params{
		DateFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	records, err := runner.Run(context.Background(), sess)
	require.NoError(t, err)

	// The stale entry falls outside the window and the programme document is
	// blacklisted, leaving the photovoltaic initiation notice.
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, srv.URL+"/obwieszczenia?id=1", rec.SourceURL)
	assert.Equal(t, "Gmina Lipka, woj. wielkopolskie", rec.Location)
	assert.Equal(t, "initiation", rec.Stage)
	assert.Equal(t, []string{"renewables"}, rec.Industries)
	assert.Equal(t, "2026-01-15", rec.DateLabel())

	snap := sess.State()
	assert.Equal(t, session.StatusCompleted, snap.Status)
	assert.Equal(t, 1, snap.ResultsCount)
	assert.Equal(t, 1, snap.Total)
}

func TestRun_IndustryFilterExcludes(t *testing.T) {
	srv := httptest.NewServer(bipSite())
	defer srv.Close()

	runner := newTestRunner(t, srv.URL)
	sess := session.New(session.Params{
		DateFrom:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Industries: []filter.Industry{filter.IndustryMining},
	})

	records, err := runner.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.Empty(t, records, "the only in-window record is renewables, not mining")
}

func TestRun_RejectedRecordsStayVisibleToLaterRuns(t *testing.T) {
	srv := httptest.NewServer(bipSite())
	defer srv.Close()

	runner := newTestRunner(t, srv.URL)
	window2026 := session.Params{
		DateFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	// First run's window predates every announcement, so nothing is accepted.
	first, err := runner.Run(context.Background(), session.New(session.Params{
		DateFrom: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)
	require.Empty(t, first)

	// A later run with a matching window still sees the announcement: the
	// first run rejected it, so it was never marked seen.
	second, err := runner.Run(context.Background(), session.New(window2026))
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, srv.URL+"/obwieszczenia?id=1", second[0].SourceURL)

	// Now it was accepted, so repeating the search yields nothing new.
	third, err := runner.Run(context.Background(), session.New(window2026))
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestRun_MissingCatalogFails(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.AppConfig{SourcesFile: filepath.Join(t.TempDir(), "absent.json")}
	runner := NewRunner(cfg, nil, filter.NewClassifier(), nil, log)

	sess := session.New(session.Params{})
	_, err := runner.Run(context.Background(), sess)
	require.Error(t, err)
	assert.Equal(t, session.StatusError, sess.State().Status)
}
