package domain

import "time"

// UrgencyLevel classifica a proximidade do prazo de distribuição
type UrgencyLevel string

const (
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// Rank menor significa mais urgente
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	default:
		return 2
	}
}

// AlertedCampaign campanha anotada com os dados do prazo. É recalculada a cada execução.
type AlertedCampaign struct {
	Campaign
	DaysSinceCreation int          `json:"days_since_creation"`
	DaysRemaining     int          `json:"days_remaining"`
	UrgencyLevel      UrgencyLevel `json:"urgency_level"`
}

// AlertReport resultado persistido de uma execução do agendador de alertas
type AlertReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Total       int       `json:"total"`
	Critical    int       `json:"critical"`
	High        int       `json:"high"`
	Medium      int       `json:"medium"`
	CampaignIDs []string  `json:"campaign_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAlertReport resume uma lista de alertas
func NewAlertReport(id string, generatedAt time.Time, alerts []AlertedCampaign) *AlertReport {
	report := &AlertReport{
		ID:          id,
		GeneratedAt: generatedAt,
		Total:       len(alerts),
		CampaignIDs: make([]string, 0, len(alerts)),
	}

	for _, alert := range alerts {
		switch alert.UrgencyLevel {
		case UrgencyCritical:
			report.Critical++
		case UrgencyHigh:
			report.High++
		default:
			report.Medium++
		}
		report.CampaignIDs = append(report.CampaignIDs, alert.ID)
	}

	return report
}
