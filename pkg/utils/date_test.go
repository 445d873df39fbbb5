package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMonthLabel(t *testing.T) {
	feb := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "févr. 2024", FormatMonthLabel(feb))
	assert.Equal(t, "févr. 2024", MonthLabel(feb, language.MustParse("fr-CA")))
	assert.Equal(t, "fev. 2024", MonthLabel(feb, language.MustParse("pt-BR")))
	assert.Equal(t, "Feb 2024", MonthLabel(feb, language.English))
	assert.Equal(t, "déc. 2023", FormatMonthLabel(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseTimestamp(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseTimestamp("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = ParseTimestamp("2024-06-20T10:00:00Z", fallback)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Day())

	got, err = ParseTimestamp("2024-06-21", fallback)
	require.NoError(t, err)
	assert.Equal(t, 21, got.Day())

	_, err = ParseTimestamp("21/06/2024", fallback)
	assert.Error(t, err)
}
