package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bip-scraper/pkg/models"
)

func TestWriteCSV(t *testing.T) {
	records := []models.ClassifiedRecord{
		{
			Location:   "Gmina Lipka, woj. wielkopolskie",
			Date:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Stage:      "initiation",
			Industries: []string{"renewables", "logistics"},
			Title:      "Obwieszczenie o wszczęciu postępowania",
			Signature:  "WGK.6220.1.2026",
			SourceURL:  "https://bip.lipka.pl/wiadomosci?id=41",
			SourceName: "Gmina Lipka",
		},
		{
			Location:   "Gmina Złotów",
			Stage:      "unknown",
			Industries: []string{"other"},
			Title:      "Obwieszczenie, w tytule przecinek i \"cudzysłów\"",
			Signature:  "unknown",
			SourceURL:  "https://bip.zlotow.pl/w?id=2",
			SourceName: "Gmina Złotów",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Lokalizacja", "Data obwieszczenia", "Etap postępowania", "Branża",
		"Przedsięwzięcie", "Sygnatura", "Źródło URL", "Źródło nazwa",
	}, rows[0])

	assert.Equal(t, []string{
		"Gmina Lipka, woj. wielkopolskie", "2026-01-15", "initiation",
		"renewables, logistics", "Obwieszczenie o wszczęciu postępowania",
		"WGK.6220.1.2026", "https://bip.lipka.pl/wiadomosci?id=41", "Gmina Lipka",
	}, rows[1])

	// Undated records render "unknown" and quoting survives a roundtrip.
	assert.Equal(t, "unknown", rows[2][1])
	assert.Equal(t, "Obwieszczenie, w tytule przecinek i \"cudzysłów\"", rows[2][4])
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
