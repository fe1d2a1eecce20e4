package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bip-scraper/pkg/models"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Łódź", "lodz"},
		{"Dąbrowa Górnicza", "dabrowa-gornicza"},
		{"Jastrzębie-Zdrój", "jastrzebie-zdroj"},
		{"  Kraków  ", "krakow"},
		{"gm-świdnica", "gm-swidnica"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeID(tt.in), "input %q", tt.in)
	}
}

func TestInferSourceType(t *testing.T) {
	tests := []struct {
		name   string
		source models.Source
		want   string
	}{
		{"explicit type wins", models.Source{ID: "gw-lipka", Type: "gmina_wiejska"}, "gmina_wiejska"},
		{"gdos", models.Source{ID: "gdos"}, "gdos"},
		{"rdos prefix", models.Source{ID: "rdos-poznan"}, "rdos"},
		{"voivodeship prefix", models.Source{ID: "woj-wielkopolskie"}, "voivodeship"},
		{"powiat prefix", models.Source{ID: "pow-zlotowski"}, "powiat"},
		{"gmina miejska prefix", models.Source{ID: "gm-zlotow"}, "gmina_miejska"},
		{"gmina miejsko-wiejska prefix", models.Source{ID: "gmw-krajenka"}, "gmina_miejsko_wiejska"},
		{"gmina wiejska prefix", models.Source{ID: "gw-lipka"}, "gmina_wiejska"},
		{"city with county rights by name", models.Source{ID: "poznan"}, "miasto_na_prawach_powiatu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferSourceType(tt.source))
		})
	}
}

func TestGetProfile(t *testing.T) {
	assert.Equal(t, "top10", GetProfile("top10").ID)
	assert.Equal(t, "full", GetProfile("nieistniejacy").ID, "unknown profile falls back to full")
	assert.Len(t, AvailableProfiles(), 6)
}

var profileFixture = []models.Source{
	{ID: "gdos", Name: "GDOŚ"},
	{ID: "rdos-poznan", Name: "RDOŚ Poznań"},
	{ID: "pow-zlotowski", Name: "Powiat Złotowski"},
	{ID: "warszawa", Name: "Warszawa", Voivodeship: "mazowieckie"},
	{ID: "gliwice", Name: "Gliwice", Type: "miasto_na_prawach_powiatu", Voivodeship: "śląskie"},
	{ID: "gw-lipka", Name: "Gmina Lipka", Voivodeship: "wielkopolskie"},
}

func TestFilterByProfile_Top10(t *testing.T) {
	got := FilterByProfile(profileFixture, "top10")

	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	// Warszawa is on the top-10 list, Gliwice is not. The top10 profile also
	// skips GDOŚ and RDOŚ to keep the quick check quick.
	assert.Equal(t, []string{"warszawa"}, ids)
}

func TestFilterByProfile_SSE(t *testing.T) {
	got := FilterByProfile(profileFixture, "sse")

	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"gdos", "rdos-poznan", "gliwice"}, ids)
}

func TestFilterByProfile_UnknownKeepsAll(t *testing.T) {
	got := FilterByProfile(profileFixture, "nieistniejacy")
	assert.Len(t, got, len(profileFixture))
}

func TestCountByVoivodeship(t *testing.T) {
	counts := CountByVoivodeship(profileFixture)

	assert.Equal(t, 1, counts["mazowieckie"])
	assert.Equal(t, 1, counts["slaskie"], "region names are normalized")
	assert.Equal(t, 1, counts["wielkopolskie"])
	assert.Equal(t, 3, counts["inne"], "sources without a region land in 'inne'")
}

func TestFilterByVoivodeship(t *testing.T) {
	got := FilterByVoivodeship(profileFixture, []string{"Śląskie"})
	require.Len(t, got, 1)
	assert.Equal(t, "gliwice", got[0].ID)

	assert.Len(t, FilterByVoivodeship(profileFixture, nil), len(profileFixture))
}
