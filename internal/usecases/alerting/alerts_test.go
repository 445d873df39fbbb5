package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var now = time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)

func createdDaysAgo(days int) string {
	return now.Add(-time.Duration(days) * day).Format(time.RFC3339)
}

func TestComputeAlerts(t *testing.T) {
	tests := []struct {
		name      string
		campaign  domain.Campaign
		wantAlert bool
		wantSince int
		wantLeft  int
		wantLevel domain.UrgencyLevel
	}{
		{
			name:      "16 dias e CREATED é crítica",
			campaign:  domain.Campaign{ID: "c1", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(16)},
			wantAlert: true,
			wantSince: 16,
			wantLeft:  -1,
			wantLevel: domain.UrgencyCritical,
		},
		{
			name:      "exatamente 15 dias é crítica",
			campaign:  domain.Campaign{ID: "c2", Status: domain.StatusPrinted, CreatedAt: createdDaysAgo(15)},
			wantAlert: true,
			wantSince: 15,
			wantLeft:  0,
			wantLevel: domain.UrgencyCritical,
		},
		{
			name:      "12 dias entra na janela de aviso",
			campaign:  domain.Campaign{ID: "c3", Status: domain.StatusInPrinting, CreatedAt: createdDaysAgo(12)},
			wantAlert: true,
			wantSince: 12,
			wantLeft:  3,
			wantLevel: domain.UrgencyHigh,
		},
		{
			name:     "11 dias ainda não alerta",
			campaign: domain.Campaign{ID: "c4", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(11)},
		},
		{
			name:     "10 dias não alerta",
			campaign: domain.Campaign{ID: "c5", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(10)},
		},
		{
			name:     "FINISHED com 30 dias nunca alerta",
			campaign: domain.Campaign{ID: "c6", Status: domain.StatusFinished, CreatedAt: createdDaysAgo(30)},
		},
		{
			name:     "DELIVERED com 20 dias nunca alerta",
			campaign: domain.Campaign{ID: "c7", Status: domain.StatusDelivered, CreatedAt: createdDaysAgo(20)},
		},
		{
			name:     "sem created_at é ignorada",
			campaign: domain.Campaign{ID: "c8", Status: domain.StatusCreated},
		},
		{
			name:     "created_at inválido é ignorado",
			campaign: domain.Campaign{ID: "c9", Status: domain.StatusCreated, CreatedAt: "ontem"},
		},
		{
			name:     "criação no futuro não alerta",
			campaign: domain.Campaign{ID: "c10", Status: domain.StatusCreated, CreatedAt: now.Add(48 * time.Hour).Format(time.RFC3339)},
		},
		{
			name:      "status desconhecido não é terminal",
			campaign:  domain.Campaign{ID: "c11", Status: "ARCHIVED", CreatedAt: createdDaysAgo(40)},
			wantAlert: true,
			wantSince: 40,
			wantLeft:  -25,
			wantLevel: domain.UrgencyCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ComputeAlerts([]domain.Campaign{tt.campaign}, now)
			if !tt.wantAlert {
				assert.Empty(t, alerts)
				return
			}

			require.Len(t, alerts, 1)
			assert.Equal(t, tt.campaign.ID, alerts[0].ID)
			assert.Equal(t, tt.wantSince, alerts[0].DaysSinceCreation)
			assert.Equal(t, tt.wantLeft, alerts[0].DaysRemaining)
			assert.Equal(t, tt.wantLevel, alerts[0].UrgencyLevel)
			assert.Equal(t, MaxDays-alerts[0].DaysSinceCreation, alerts[0].DaysRemaining)
		})
	}
}

func TestComputeAlerts_Ordering(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "high-13", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(13)},
		{ID: "crit-15", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(15)},
		{ID: "high-12", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(12)},
		{ID: "crit-20", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(20)},
		{ID: "crit-15-b", Status: domain.StatusSentToPrint, CreatedAt: createdDaysAgo(15)},
		{ID: "ok-2", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(2)},
	}

	alerts := ComputeAlerts(campaigns, now)

	ids := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		ids = append(ids, alert.ID)
	}
	assert.Equal(t, []string{"crit-20", "crit-15", "crit-15-b", "high-13", "high-12"}, ids)

	for i := 1; i < len(alerts); i++ {
		prev, cur := alerts[i-1], alerts[i]
		assert.LessOrEqual(t, prev.UrgencyLevel.Rank(), cur.UrgencyLevel.Rank())
		if prev.UrgencyLevel == cur.UrgencyLevel {
			assert.LessOrEqual(t, prev.DaysRemaining, cur.DaysRemaining)
		}
	}
}

func TestComputeAlerts_EmptySnapshot(t *testing.T) {
	assert.NotNil(t, ComputeAlerts(nil, now))
	assert.Empty(t, ComputeAlerts(nil, now))
	assert.Empty(t, ComputeAlerts([]domain.Campaign{}, now))
}

func TestComputeAlerts_DoesNotMutateSnapshot(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "b", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(13)},
		{ID: "a", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(16)},
	}

	_ = ComputeAlerts(campaigns, now)

	assert.Equal(t, "b", campaigns[0].ID)
	assert.Equal(t, "a", campaigns[1].ID)
}

func TestComputeAlertsWithPolicy(t *testing.T) {
	policy := Policy{MaxDays: 10, WarningDays: 5}
	campaigns := []domain.Campaign{
		{ID: "four-days", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(4)},
		{ID: "five-days", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(5)},
		{ID: "eight-days", Status: domain.StatusCreated, CreatedAt: createdDaysAgo(8)},
	}

	alerts := ComputeAlertsWithPolicy(campaigns, now, policy)
	require.Len(t, alerts, 2)
	assert.Equal(t, "eight-days", alerts[0].ID)
	assert.Equal(t, 2, alerts[0].DaysRemaining)
	assert.Equal(t, "five-days", alerts[1].ID)
	assert.Equal(t, 5, alerts[1].DaysRemaining)
	assert.Equal(t, domain.UrgencyHigh, alerts[1].UrgencyLevel)
}

func TestPolicy_Urgency(t *testing.T) {
	assert.Equal(t, domain.UrgencyCritical, DefaultPolicy.Urgency(0))
	assert.Equal(t, domain.UrgencyCritical, DefaultPolicy.Urgency(-4))
	assert.Equal(t, domain.UrgencyHigh, DefaultPolicy.Urgency(1))
	assert.Equal(t, domain.UrgencyHigh, DefaultPolicy.Urgency(3))
	assert.Equal(t, domain.UrgencyMedium, DefaultPolicy.Urgency(4))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(now, now))
	assert.Equal(t, 0, DaysBetween(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysBetween(now.Add(-25*time.Hour), now))
	assert.Equal(t, -1, DaysBetween(now.Add(time.Hour), now))
}
