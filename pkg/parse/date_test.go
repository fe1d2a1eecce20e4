package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate_NumericFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"dotted", "Obwieszczenie z dnia 15.01.2026 r.", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"dashed", "Data publikacji: 09-01-2026", time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
		{"slashed", "opublikowano 31/12/2024", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"iso", "2024-07-03 aktualizacja", time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDate(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDate_SpelledMonth(t *testing.T) {
	got, ok := ExtractDate("Decyzja z 12 stycznia 2024 roku")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), got)

	got, ok = ExtractDate("obwieszczenie z 3 września 2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestExtractDate_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no date", "Obwieszczenie o wszczęciu postępowania"},
		{"impossible month", "2026-13-40"},
		{"year out of range", "15.01.1995"},
		{"far future year", "15.01.2055"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDate(tt.text)
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

func TestExtractDate_PrefersDayFirst(t *testing.T) {
	// Day-first numeric dates are the dominant BIP convention.
	got, ok := ExtractDate("05.03.2024")
	assert.True(t, ok)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}
