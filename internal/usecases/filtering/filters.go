// Package filtering aplica os filtros de código postal e busca textual sobre um snapshot
package filtering

import (
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ApplyFilters mantém as campanhas que contêm o código postal como token exato
// e cujo nome, número do pedido ou empresa do cliente contém o termo buscado.
// Filtros vazios ou só com espaços não restringem. Fora isso o termo é usado
// como veio, espaços inclusive. A ordem do snapshot é preservada.
func ApplyFilters(campaigns []domain.Campaign, postalCode, searchTerm string) []domain.Campaign {
	postalCode = strings.TrimSpace(postalCode)

	// Caser guarda estado, então cada chamada usa o seu
	lower := cases.Lower(language.Und)
	term := ""
	if strings.TrimSpace(searchTerm) != "" {
		term = lower.String(searchTerm)
	}

	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if postalCode != "" && !campaign.HasPostalCode(postalCode) {
			continue
		}
		if term != "" && !matchesSearch(lower, campaign, term) {
			continue
		}
		filtered = append(filtered, campaign)
	}

	return filtered
}

// ApplyCampaignFilters atalho para os filtros vindos da query string
func ApplyCampaignFilters(campaigns []domain.Campaign, filters domain.CampaignFilters) []domain.Campaign {
	return ApplyFilters(campaigns, filters.PostalCode, filters.SearchTerm)
}

func matchesSearch(lower cases.Caser, campaign domain.Campaign, term string) bool {
	for _, field := range []string{campaign.Name, campaign.OrderNumber, campaign.ClientCompanyName()} {
		if field == "" {
			continue
		}
		if strings.Contains(lower.String(field), term) {
			return true
		}
	}
	return false
}
