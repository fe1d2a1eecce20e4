package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "None"},
		{"404", fmt.Errorf("%w: status 404 404 Not Found", ErrClientHTTPError), "HTTP_404"},
		{"403", fmt.Errorf("%w: status 403 403 Forbidden", ErrClientHTTPError), "HTTP_403"},
		{"429", fmt.Errorf("%w: status 429 429 Too Many Requests", ErrClientHTTPError), "HTTP_429"},
		{"other 4xx", fmt.Errorf("%w: status 410 410 Gone", ErrClientHTTPError), "HTTP_4xx"},
		{"5xx", fmt.Errorf("%w: status 500 500 Internal Server Error", ErrServerHTTPError), "HTTP_5xx"},
		{"robots", ErrRobotsDisallowed, "Policy_Robots"},
		{"parse url", fmt.Errorf("%w: invalid page URL %q", ErrParsing, "::"), "Content_ParsingURL"},
		{"parse html", fmt.Errorf("%w: HTML parse failed", ErrParsing), "Content_ParsingHTML"},
		{"decoding", fmt.Errorf("%w: bad bytes", ErrDecoding), "Content_Decoding"},
		{"database", fmt.Errorf("%w: badger write", ErrDatabase), "Database_Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeError(tt.err))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrClientHTTPError, ErrServerHTTPError))
	assert.False(t, errors.Is(ErrRobotsDisallowed, ErrParsing))
}
