package domain

// MonthlyProfit receita estimada somada por mês de criação
type MonthlyProfit struct {
	Month  string  `json:"month"` // Formato yyyy-mm
	Label  string  `json:"label"` // Ex: "janv. 2024"
	Profit float64 `json:"profit"`
}

// PostalCodeFrequency quantidade e participação de campanhas por código postal
type PostalCodeFrequency struct {
	Code        string   `json:"code"`
	Count       int      `json:"count"`
	Percentage  float64  `json:"percentage"`
	CampaignIDs []string `json:"campaign_ids"`
}

// StatusCount quantidade de campanhas em um status
type StatusCount struct {
	Status CampaignStatus `json:"status"`
	Label  string         `json:"name"`
	Count  int            `json:"value"`
}

// PartnerRevenue receita estimada das campanhas atribuídas a um parceiro
type PartnerRevenue struct {
	PartnerID   string  `json:"partner_id"`
	PartnerName string  `json:"partner_name"`
	Campaigns   int     `json:"campaigns"`
	Revenue     float64 `json:"revenue"`
}

// ClientPostalCodeCount quantidade de clientes por código postal
type ClientPostalCodeCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// AggregateSummary estatísticas derivadas de um snapshot de campanhas
type AggregateSummary struct {
	TotalCampaigns      int                   `json:"total_campaigns"`
	TotalRevenue        float64               `json:"total_revenue"`
	ProfitsByMonth      []MonthlyProfit       `json:"profits_by_month"`
	PostalCodeFrequency []PostalCodeFrequency `json:"postal_code_frequency"`
	StatusDistribution  []StatusCount         `json:"status_distribution"`
	RevenueByPartner    []PartnerRevenue      `json:"revenue_by_partner"`
}

// StatusDistributionByLabel retorna a distribuição indexada pelo label de exibição
func (s AggregateSummary) StatusDistributionByLabel() map[string]int {
	byLabel := make(map[string]int, len(s.StatusDistribution))
	for _, item := range s.StatusDistribution {
		byLabel[item.Label] += item.Count
	}
	return byLabel
}

// AdminAnalytics resposta do dashboard administrativo
type AdminAnalytics struct {
	Summary              AggregateSummary        `json:"summary"`
	TopClientPostalCodes []ClientPostalCodeCount `json:"top_client_postal_codes"`
}

// DashboardStats contadores exibidos no dashboard do cliente
type DashboardStats struct {
	TotalCampaigns   int `json:"total_campaigns"`
	ActiveCampaigns  int `json:"active_campaigns"`
	PendingCampaigns int `json:"pending_campaigns"`
	TotalBags        int `json:"total_bags"`
}

// ClientDashboard resposta do dashboard do cliente
type ClientDashboard struct {
	ClientID  string         `json:"client_id"`
	Stats     DashboardStats `json:"stats"`
	Campaigns []Campaign     `json:"campaigns"`
}
