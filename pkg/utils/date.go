package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale idioma dos labels exibidos nos dashboards
var DefaultLocale = language.French

var supportedLocales = []language.Tag{
	language.French,
	language.BrazilianPortuguese,
	language.English,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Abreviações de mês por idioma suportado
var monthAbbreviations = map[language.Tag][12]string{
	language.French: {
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	language.BrazilianPortuguese: {
		"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
		"jul.", "ago.", "set.", "out.", "nov.", "dez.",
	},
	language.English: {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimestamp aceita RFC3339 ou apenas a data. Vazio retorna fallback.
func ParseTimestamp(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	date, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}

	return *date, nil
}

// FormatMonthLabel label "MMM yyyy" no idioma padrão. Ex: "janv. 2024"
func FormatMonthLabel(t time.Time) string {
	return MonthLabel(t, DefaultLocale)
}

// MonthLabel label "MMM yyyy" no idioma mais próximo suportado
func MonthLabel(t time.Time, tag language.Tag) string {
	_, i, _ := localeMatcher.Match(tag)
	names := monthAbbreviations[supportedLocales[i]]

	return fmt.Sprintf("%s %d", names[t.Month()-1], t.Year())
}
