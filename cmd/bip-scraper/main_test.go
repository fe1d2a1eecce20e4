package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCatalogSummary(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	path := filepath.Join(t.TempDir(), "sources.json")
	catalog := `{
		"gdos": [{"id": "gdos", "name": "GDOŚ", "bip_url": "https://bip.gdos.gov.pl"}],
		"miasta_na_prawach_powiatu": [
			{"id": "warszawa", "name": "Warszawa", "voivodeship": "mazowieckie", "bip_url": "https://bip.warszawa.pl"},
			{"id": "gliwice", "name": "Gliwice", "voivodeship": "śląskie", "bip_url": "https://bip.gliwice.eu"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	var out strings.Builder
	require.NoError(t, printCatalogSummary(&out, path, log))

	listing := out.String()
	assert.Contains(t, listing, "top10")
	assert.Contains(t, listing, "Pełne skanowanie")
	assert.Contains(t, listing, "renewables")
	assert.Contains(t, listing, "mazowieckie")
	assert.Contains(t, listing, "3 razem")
}

func TestPrintCatalogSummary_MissingCatalog(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out strings.Builder
	err := printCatalogSummary(&out, filepath.Join(t.TempDir(), "brak.json"), log)
	assert.Error(t, err)
}
