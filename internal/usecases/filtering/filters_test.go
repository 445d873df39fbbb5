package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func campaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "1", Name: "Boulangerie Printemps", OrderNumber: "CMD-aB12cd", PostalCodes: "14000,14100",
			Client: &domain.ClientSummary{CompanyName: "Maison Dupont"}},
		{ID: "2", Name: "Pharmacie du Port", OrderNumber: "CMD-Xy99zz", PostalCodes: "140001"},
		{ID: "3", Name: "Fromagerie", OrderNumber: "CMD-QQ11aa", PostalCodes: " 14000 ",
			Client: &domain.ClientSummary{CompanyName: "Épicerie Générale"}},
		{ID: "4", Name: "Librairie", OrderNumber: "CMD-rr22bb", PostalCodes: ""},
	}
}

func ids(items []domain.Campaign) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name       string
		postalCode string
		search     string
		want       []string
	}{
		{name: "no filters keeps everything in order", want: []string{"1", "2", "3", "4"}},
		{name: "postal code exact token", postalCode: "14000", want: []string{"1", "3"}},
		{name: "postal code is not substring", postalCode: "140001", want: []string{"2"}},
		{name: "postal code with spaces", postalCode: " 14100 ", want: []string{"1"}},
		{name: "search by name ignoring case", search: "PHARMACIE", want: []string{"2"}},
		{name: "search by order number", search: "qq11", want: []string{"3"}},
		{name: "search by client company", search: "dupont", want: []string{"1"}},
		{name: "search with accents", search: "ÉPICERIE", want: []string{"3"}},
		{name: "filters compose with AND", postalCode: "14000", search: "fromagerie", want: []string{"3"}},
		{name: "AND with no match", postalCode: "140001", search: "librairie", want: []string{}},
		{name: "unknown postal code", postalCode: "75000", want: []string{}},
		{name: "blank search does not restrict", search: "   ", want: []string{"1", "2", "3", "4"}},
		{name: "search keeps trailing space", search: "fromagerie ", want: []string{}},
		{name: "search space inside name", search: "e D", want: []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(campaigns(), tt.postalCode, tt.search)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	snapshot := campaigns()

	once := ApplyFilters(snapshot, "14000", "e")
	twice := ApplyFilters(once, "14000", "e")

	assert.Equal(t, once, twice)
	assert.Equal(t, once, ApplyFilters(snapshot, "14000", "e"))
}

func TestApplyFilters_DoesNotMutateSnapshot(t *testing.T) {
	snapshot := campaigns()
	_ = ApplyFilters(snapshot, "14000", "fromagerie")

	assert.Equal(t, campaigns(), snapshot)
}

func TestApplyFilters_EmptySnapshot(t *testing.T) {
	assert.NotNil(t, ApplyFilters(nil, "14000", "x"))
	assert.Empty(t, ApplyFilters(nil, "", ""))
}

func TestApplyCampaignFilters(t *testing.T) {
	got := ApplyCampaignFilters(campaigns(), domain.CampaignFilters{PostalCode: "14000", SearchTerm: "boulangerie"})
	assert.Equal(t, []string{"1"}, ids(got))
}
