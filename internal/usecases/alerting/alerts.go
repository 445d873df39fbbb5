// Package alerting calcula quais campanhas estão perto ou além do prazo de distribuição
package alerting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

const (
	// MaxDays prazo máximo de distribuição contado a partir da criação
	MaxDays = 15
	// WarningDays tamanho da janela de aviso antes do prazo
	WarningDays = 3
)

const day = 24 * time.Hour

// Policy parâmetros do prazo de distribuição
type Policy struct {
	MaxDays     int
	WarningDays int
}

// DefaultPolicy prazo de 15 dias com aviso nos últimos 3
var DefaultPolicy = Policy{MaxDays: MaxDays, WarningDays: WarningDays}

// ComputeAlerts aplica DefaultPolicy ao snapshot
func ComputeAlerts(campaigns []domain.Campaign, now time.Time) []domain.AlertedCampaign {
	return ComputeAlertsWithPolicy(campaigns, now, DefaultPolicy)
}

// ComputeAlertsWithPolicy retorna as campanhas na janela de aviso ou atrasadas,
// críticas primeiro e depois por dias restantes. Empates mantêm a ordem do snapshot.
func ComputeAlertsWithPolicy(campaigns []domain.Campaign, now time.Time, policy Policy) []domain.AlertedCampaign {
	alerts := make([]domain.AlertedCampaign, 0)

	for _, campaign := range campaigns {
		createdAt, err := campaign.CreatedTime()
		if err != nil {
			log.L.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"created_at":  campaign.CreatedAt,
				"error":       err.Error(),
			}).Warnf("alerting: campanha %s ignorada por data de criação ausente ou inválida", campaign.ID)
			continue
		}

		if campaign.Status.IsTerminal() {
			continue
		}

		daysSinceCreation := DaysBetween(createdAt, now)
		daysRemaining := policy.MaxDays - daysSinceCreation

		if daysSinceCreation < policy.MaxDays-policy.WarningDays && daysRemaining > 0 {
			continue
		}

		alerts = append(alerts, domain.AlertedCampaign{
			Campaign:          campaign,
			DaysSinceCreation: daysSinceCreation,
			DaysRemaining:     daysRemaining,
			UrgencyLevel:      policy.Urgency(daysRemaining),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alerts[i].UrgencyLevel.Rank(), alerts[j].UrgencyLevel.Rank()
		if ri != rj {
			return ri < rj
		}
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})

	return alerts
}

// Urgency classifica os dias restantes
func (p Policy) Urgency(daysRemaining int) domain.UrgencyLevel {
	switch {
	case daysRemaining <= 0:
		return domain.UrgencyCritical
	case daysRemaining <= p.WarningDays:
		return domain.UrgencyHigh
	default:
		return domain.UrgencyMedium
	}
}

// DaysBetween dias completos decorridos entre from e to, arredondando para baixo.
// Negativo quando from está no futuro.
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from)) / float64(day)))
}
