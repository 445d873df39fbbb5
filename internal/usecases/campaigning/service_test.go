package campaigning

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) Invalidate() {
	c.calls.Add(1)
}

var now = time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)

func daysAgo(days int) string {
	return now.AddDate(0, 0, -days).Format(time.RFC3339)
}

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "c1", Name: "Boulangerie", OrderNumber: "CMD-1", Status: domain.StatusCreated, CreatedAt: daysAgo(16),
			PostalCodes: "14000,14100", EstimatedPrice: domain.NewAmount("100")},
		{ID: "c2", Name: "Pharmacie", OrderNumber: "CMD-2", Status: domain.StatusInPrinting, CreatedAt: daysAgo(13),
			PostalCodes: "14000", EstimatedPrice: domain.NewAmount("50")},
		{ID: "c3", Name: "Fromagerie", OrderNumber: "CMD-3", Status: domain.StatusFinished, CreatedAt: daysAgo(30),
			PostalCodes: "76000"},
		{ID: "c4", Name: "Librairie", OrderNumber: "CMD-4", Status: domain.StatusCreated, CreatedAt: daysAgo(2)},
	}
}

func newService(t *testing.T) (*Service, *mocks.MockCampaignRepository, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	return NewService(campaignRepo, clientRepo, nil), campaignRepo, clientRepo
}

func TestNewService_PolicyFromConfig(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{Deadline: config.Deadline{MaxDays: 20, WarningDays: 5}})
	assert.Equal(t, alerting.Policy{MaxDays: 20, WarningDays: 5}, svc.Policy())

	svc = NewService(nil, nil, &config.Config{})
	assert.Equal(t, alerting.DefaultPolicy, svc.Policy())
}

func TestService_GetAlerts(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(sampleCampaigns(), nil)

	alerts, err := svc.GetAlerts(ctx, now)
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, "c1", alerts[0].ID)
	assert.Equal(t, domain.UrgencyCritical, alerts[0].UrgencyLevel)
	assert.Equal(t, "c2", alerts[1].ID)
	assert.Equal(t, domain.UrgencyHigh, alerts[1].UrgencyLevel)
}

func TestService_GetAlerts_RepositoryError(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.GetAlerts(ctx, now)
	require.Error(t, err)

	var campaignErr *CampaignError
	require.ErrorAs(t, err, &campaignErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, campaignErr.Code)
}

func TestService_ListCampaigns(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(sampleCampaigns(), nil).Times(2)

	got, err := svc.ListCampaigns(ctx, domain.CampaignFilters{PostalCode: "14000"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)

	got, err = svc.ListCampaigns(ctx, domain.CampaignFilters{PostalCode: "14000", SearchTerm: "PHARM"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
}

func TestService_ListCampaigns_EmptySnapshot(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(nil, nil)

	got, err := svc.ListCampaigns(ctx, domain.CampaignFilters{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_GetAnalytics(t *testing.T) {
	svc, campaignRepo, clientRepo := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(sampleCampaigns(), nil)
	clientRepo.EXPECT().ListClients(ctx).Return([]domain.Client{
		{ID: "cl1", PostalCode: "14000"},
		{ID: "cl2", PostalCode: "14000"},
		{ID: "cl3", PostalCode: "76000"},
	}, nil)

	analytics, err := svc.GetAnalytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, analytics.Summary.TotalCampaigns)
	assert.Equal(t, 150.0, analytics.Summary.TotalRevenue)
	require.Len(t, analytics.Summary.PostalCodeFrequency, 3)
	assert.Equal(t, "14000", analytics.Summary.PostalCodeFrequency[0].Code)
	assert.Equal(t, 50.0, analytics.Summary.PostalCodeFrequency[0].Percentage)
	assert.Equal(t, []domain.ClientPostalCodeCount{{Code: "14000", Count: 2}, {Code: "76000", Count: 1}}, analytics.TopClientPostalCodes)
}

func TestService_GetAnalytics_ClientsError(t *testing.T) {
	svc, campaignRepo, clientRepo := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(sampleCampaigns(), nil)
	clientRepo.EXPECT().ListClients(ctx).Return(nil, errors.New("timeout"))

	_, err := svc.GetAnalytics(ctx)
	var campaignErr *CampaignError
	require.ErrorAs(t, err, &campaignErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, campaignErr.Code)
}

func TestService_GetPostalCodes(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListCampaigns(ctx).Return(sampleCampaigns(), nil)

	frequencies, err := svc.GetPostalCodes(ctx)
	require.NoError(t, err)
	require.Len(t, frequencies, 3)
	assert.Equal(t, domain.PostalCodeFrequency{Code: "14000", Count: 2, Percentage: 50, CampaignIDs: []string{"c1", "c2"}}, frequencies[0])
}

func TestService_GetClientDashboard(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().ListByClient(ctx, "cl1").Return(sampleCampaigns(), nil)

	dashboard, err := svc.GetClientDashboard(ctx, " cl1 ")
	require.NoError(t, err)

	assert.Equal(t, "cl1", dashboard.ClientID)
	assert.Equal(t, domain.DashboardStats{
		TotalCampaigns:   4,
		ActiveCampaigns:  3,
		PendingCampaigns: 2,
		TotalBags:        4000,
	}, dashboard.Stats)
	assert.Len(t, dashboard.Campaigns, 4)
}

func TestService_GetClientDashboard_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GetClientDashboard(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
	assert.True(t, IsValidationError(err))
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		campaignID      string
		status          string
		setup           func(repo *mocks.MockCampaignRepository)
		wantErr         error
		wantCode        string
		wantStatus      domain.CampaignStatus
		wantInvalidated int32
	}{
		{
			name:       "any known status is accepted, even backwards",
			campaignID: "c3",
			status:     "created",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "c3").Return(&domain.Campaign{ID: "c3", Status: domain.StatusFinished}, nil)
				repo.EXPECT().UpdateStatus(ctx, "c3", domain.StatusCreated).Return(nil)
			},
			wantStatus:      domain.StatusCreated,
			wantInvalidated: 1,
		},
		{
			name:       "skip ahead in lifecycle",
			campaignID: "c1",
			status:     "DELIVERED",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.StatusCreated}, nil)
				repo.EXPECT().UpdateStatus(ctx, "c1", domain.StatusDelivered).Return(nil)
			},
			wantStatus:      domain.StatusDelivered,
			wantInvalidated: 1,
		},
		{
			name:       "same status is a no-op",
			campaignID: "c1",
			status:     "CREATED",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.StatusCreated}, nil)
			},
			wantStatus: domain.StatusCreated,
		},
		{
			name:       "unknown status is rejected",
			campaignID: "c1",
			status:     "ARCHIVED",
			setup:      func(repo *mocks.MockCampaignRepository) {},
			wantErr:    ErrUnknownStatus,
			wantCode:   apiErrors.ErrUnknownStatus,
		},
		{
			name:       "missing id",
			campaignID: " ",
			status:     "CREATED",
			setup:      func(repo *mocks.MockCampaignRepository) {},
			wantErr:    ErrMissingRequiredData,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "campaign not found",
			campaignID: "nope",
			status:     "PRINTED",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "nope").Return(nil, nil)
			},
			wantErr:  ErrCampaignNotFound,
			wantCode: apiErrors.ErrCampaignNotFound,
		},
		{
			name:       "deleted between read and write",
			campaignID: "c2",
			status:     "PRINTED",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "c2").Return(&domain.Campaign{ID: "c2", Status: domain.StatusInPrinting}, nil)
				repo.EXPECT().UpdateStatus(ctx, "c2", domain.StatusPrinted).Return(repository.ErrNoRowsAffected)
			},
			wantErr:  ErrCampaignNotFound,
			wantCode: apiErrors.ErrCampaignNotFound,
		},
		{
			name:       "database failure",
			campaignID: "c2",
			status:     "PRINTED",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(ctx, "c2").Return(&domain.Campaign{ID: "c2", Status: domain.StatusInPrinting}, nil)
				repo.EXPECT().UpdateStatus(ctx, "c2", domain.StatusPrinted).Return(errors.New("deadlock"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, campaignRepo, _ := newService(t)
			invalidator := &countingInvalidator{}
			svc.OnInvalidate(invalidator)
			tt.setup(campaignRepo)

			campaign, err := svc.UpdateStatus(ctx, tt.campaignID, tt.status)

			if tt.wantCode != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.Equal(t, tt.wantCode, campaignErr.Code)
				assert.Equal(t, int32(0), invalidator.calls.Load())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, campaign.Status)
			assert.Equal(t, tt.wantInvalidated, invalidator.calls.Load())
		})
	}
}

func TestService_UpdateStatus_SentToPrintMarksPrintingStatus(t *testing.T) {
	svc, campaignRepo, _ := newService(t)
	ctx := context.Background()

	campaignRepo.EXPECT().GetByID(ctx, "c1").Return(&domain.Campaign{
		ID: "c1", Status: domain.StatusAssignedToPartner, PrintingStatus: domain.PrintingStatusNotSent,
	}, nil)
	campaignRepo.EXPECT().UpdateStatus(ctx, "c1", domain.StatusSentToPrint).Return(nil)

	campaign, err := svc.UpdateStatus(ctx, "c1", "SENT_TO_PRINT")
	require.NoError(t, err)
	assert.Equal(t, domain.PrintingStatusSentToPrint, campaign.PrintingStatus)
	assert.False(t, campaign.SelectableForPrint())
}

func TestService_Statuses(t *testing.T) {
	svc, _, _ := newService(t)
	assert.Len(t, svc.Statuses(), 8)
}

func TestCampaignError(t *testing.T) {
	err := NewCampaignError(ErrUnknownStatus, apiErrors.ErrUnknownStatus, "c1", "LOST")
	assert.Equal(t, "status desconhecido: LOST", err.Error())
	assert.ErrorIs(t, err, ErrUnknownStatus)

	assert.Equal(t, "campanha não encontrada", NewCampaignError(ErrCampaignNotFound, "", "", "").Error())
}
