// Package aggregating reúne as estatísticas derivadas de um snapshot de campanhas.
// Todas as funções são puras: não alteram o snapshot e não dependem da ordem de entrada.
package aggregating

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// TopClientPostalCodesLimit quantidade de códigos postais exibidos no dashboard admin
const TopClientPostalCodesLimit = 10

// ComputeAggregates calcula receita por mês, frequência de códigos postais,
// distribuição de status e receita por parceiro
func ComputeAggregates(campaigns []domain.Campaign) domain.AggregateSummary {
	return domain.AggregateSummary{
		TotalCampaigns:      len(campaigns),
		TotalRevenue:        ComputeTotalRevenue(campaigns),
		ProfitsByMonth:      ComputeRevenueByMonth(campaigns),
		PostalCodeFrequency: ComputePostalCodeFrequency(campaigns),
		StatusDistribution:  ComputeStatusDistribution(campaigns),
		RevenueByPartner:    ComputeRevenueByPartner(campaigns),
	}
}

// ComputeTotalRevenue soma o preço estimado de todas as campanhas
func ComputeTotalRevenue(campaigns []domain.Campaign) float64 {
	total := decimal.Zero
	for _, campaign := range campaigns {
		total = total.Add(campaign.EstimatedPrice.OrZero())
	}
	return utils.MoneyToFloat(total)
}

// ComputeRevenueByMonth agrupa a receita pelo mês de criação, em ordem cronológica.
// Campanhas sem created_at válido ou sem preço ficam de fora apenas deste agregado.
func ComputeRevenueByMonth(campaigns []domain.Campaign) []domain.MonthlyProfit {
	byMonth := make(map[string]*domain.MonthlyProfit)
	sums := make(map[string]decimal.Decimal)

	for _, campaign := range campaigns {
		if !campaign.EstimatedPrice.Valid {
			continue
		}

		createdAt, err := campaign.CreatedTime()
		if err != nil {
			continue
		}

		key := fmt.Sprintf("%04d-%02d", createdAt.Year(), int(createdAt.Month()))
		if _, ok := byMonth[key]; !ok {
			byMonth[key] = &domain.MonthlyProfit{
				Month: key,
				Label: utils.FormatMonthLabel(createdAt),
			}
		}
		sums[key] = sums[key].Add(campaign.EstimatedPrice.Decimal)
	}

	months := make([]domain.MonthlyProfit, 0, len(byMonth))
	for key, entry := range byMonth {
		entry.Profit = utils.MoneyToFloat(sums[key])
		months = append(months, *entry)
	}

	// yyyy-mm ordena lexicograficamente na ordem cronológica
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months
}

// ComputePostalCodeFrequency conta as ocorrências de cada código postal.
// Um código repetido na mesma campanha conta a cada ocorrência e repete o id.
// O percentual usa o total de campanhas do snapshot, inclusive as sem código.
func ComputePostalCodeFrequency(campaigns []domain.Campaign) []domain.PostalCodeFrequency {
	total := len(campaigns)
	index := make(map[string]int)
	frequencies := make([]domain.PostalCodeFrequency, 0)

	for _, campaign := range campaigns {
		for _, code := range campaign.PostalCodeTokens() {
			i, ok := index[code]
			if !ok {
				i = len(frequencies)
				index[code] = i
				frequencies = append(frequencies, domain.PostalCodeFrequency{
					Code:        code,
					CampaignIDs: make([]string, 0, 1),
				})
			}
			frequencies[i].Count++
			frequencies[i].CampaignIDs = append(frequencies[i].CampaignIDs, campaign.ID)
		}
	}

	for i := range frequencies {
		frequencies[i].Percentage = utils.Percentage(frequencies[i].Count, total)
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})

	return frequencies
}

// ComputeStatusDistribution conta as campanhas por status na ordem do ciclo de vida.
// Status vazio ou desconhecido conta como CREATED.
func ComputeStatusDistribution(campaigns []domain.Campaign) []domain.StatusCount {
	counts := make(map[domain.CampaignStatus]int)
	for _, campaign := range campaigns {
		counts[domain.NormalizeStatus(campaign.Status)]++
	}

	distribution := make([]domain.StatusCount, 0, len(counts))
	for _, info := range domain.Statuses() {
		count, ok := counts[info.Code]
		if !ok {
			continue
		}
		distribution = append(distribution, domain.StatusCount{
			Status: info.Code,
			Label:  info.Label,
			Count:  count,
		})
	}

	return distribution
}

// ComputeRevenueByPartner soma a receita das campanhas atribuídas a cada parceiro
func ComputeRevenueByPartner(campaigns []domain.Campaign) []domain.PartnerRevenue {
	index := make(map[string]int)
	revenues := make([]domain.PartnerRevenue, 0)
	sums := make([]decimal.Decimal, 0)

	for _, campaign := range campaigns {
		if campaign.Partner == nil {
			continue
		}

		key := campaign.Partner.ID
		if key == "" {
			key = campaign.Partner.CompanyName
		}

		i, ok := index[key]
		if !ok {
			i = len(revenues)
			index[key] = i
			revenues = append(revenues, domain.PartnerRevenue{
				PartnerID:   campaign.Partner.ID,
				PartnerName: campaign.Partner.CompanyName,
			})
			sums = append(sums, decimal.Zero)
		}
		revenues[i].Campaigns++
		sums[i] = sums[i].Add(campaign.EstimatedPrice.OrZero())
	}

	for i := range revenues {
		revenues[i].Revenue = utils.MoneyToFloat(sums[i])
	}

	sort.SliceStable(revenues, func(i, j int) bool {
		if revenues[i].Revenue != revenues[j].Revenue {
			return revenues[i].Revenue > revenues[j].Revenue
		}
		return revenues[i].PartnerName < revenues[j].PartnerName
	})

	return revenues
}

// ComputeTopClientPostalCodes conta os clientes por código postal e mantém os 10 maiores
func ComputeTopClientPostalCodes(clients []domain.Client) []domain.ClientPostalCodeCount {
	index := make(map[string]int)
	counts := make([]domain.ClientPostalCodeCount, 0)

	for _, client := range clients {
		if client.PostalCode == "" {
			continue
		}

		i, ok := index[client.PostalCode]
		if !ok {
			i = len(counts)
			index[client.PostalCode] = i
			counts = append(counts, domain.ClientPostalCodeCount{Code: client.PostalCode})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > TopClientPostalCodesLimit {
		counts = counts[:TopClientPostalCodesLimit]
	}

	return counts
}

// ComputeDashboardStats contadores do dashboard do cliente
func ComputeDashboardStats(campaigns []domain.Campaign) domain.DashboardStats {
	stats := domain.DashboardStats{TotalCampaigns: len(campaigns)}

	for _, campaign := range campaigns {
		status := domain.NormalizeStatus(campaign.Status)
		if status.IsActive() {
			stats.ActiveCampaigns++
		}
		if status == domain.StatusCreated {
			stats.PendingCampaigns++
		}
		stats.TotalBags += campaign.Bags()
	}

	return stats
}
