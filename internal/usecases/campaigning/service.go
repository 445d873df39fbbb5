// Package campaigning carrega snapshots de campanhas e os entrega aos cálculos puros
// de alertas, agregações e filtros.
package campaigning

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// Invalidator recebe o aviso de que o snapshot atual ficou desatualizado
type Invalidator interface {
	Invalidate()
}

type CampaignService interface {
	ListCampaigns(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error)
	GetAlerts(ctx context.Context, now time.Time) ([]domain.AlertedCampaign, error)
	GetAnalytics(ctx context.Context) (*domain.AdminAnalytics, error)
	GetPostalCodes(ctx context.Context) ([]domain.PostalCodeFrequency, error)
	GetClientDashboard(ctx context.Context, clientID string) (*domain.ClientDashboard, error)
	UpdateStatus(ctx context.Context, campaignID, status string) (*domain.Campaign, error)
	Statuses() []domain.StatusInfo
	Policy() alerting.Policy
}

type Service struct {
	campaignRepo repository.CampaignRepository
	clientRepo   repository.ClientRepository
	policy       alerting.Policy

	mu           sync.RWMutex
	invalidators []Invalidator
}

func NewService(campaignRepo repository.CampaignRepository, clientRepo repository.ClientRepository, cfg *config.Config) *Service {
	policy := alerting.DefaultPolicy
	if cfg != nil && cfg.Deadline.MaxDays > 0 {
		policy = alerting.Policy{
			MaxDays:     cfg.Deadline.MaxDays,
			WarningDays: cfg.Deadline.WarningDays,
		}
	}

	return &Service{
		campaignRepo: campaignRepo,
		clientRepo:   clientRepo,
		policy:       policy,
	}
}

// OnInvalidate registra quem deve ser avisado após uma alteração de status
func (s *Service) OnInvalidate(invalidator Invalidator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidators = append(s.invalidators, invalidator)
}

func (s *Service) Policy() alerting.Policy {
	return s.policy
}

func (s *Service) Statuses() []domain.StatusInfo {
	return domain.Statuses()
}

func (s *Service) ListCampaigns(ctx context.Context, filters domain.CampaignFilters) ([]domain.Campaign, error) {
	campaigns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return filtering.ApplyCampaignFilters(campaigns, filters), nil
}

func (s *Service) GetAlerts(ctx context.Context, now time.Time) ([]domain.AlertedCampaign, error) {
	campaigns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	alerts := alerting.ComputeAlertsWithPolicy(campaigns, now, s.policy)

	log.ForContext(ctx).Debugf("alertas calculados: %d de %d campanhas", len(alerts), len(campaigns))

	return alerts, nil
}

func (s *Service) GetAnalytics(ctx context.Context) (*domain.AdminAnalytics, error) {
	campaigns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, NewCampaignError(
			errors.Wrap(err, ErrDatabaseOperation.Error()),
			apiErrors.ErrDatabaseOperation, "", "erro ao listar clientes",
		)
	}

	return &domain.AdminAnalytics{
		Summary:              aggregating.ComputeAggregates(campaigns),
		TopClientPostalCodes: aggregating.ComputeTopClientPostalCodes(clients),
	}, nil
}

func (s *Service) GetPostalCodes(ctx context.Context) ([]domain.PostalCodeFrequency, error) {
	campaigns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return aggregating.ComputePostalCodeFrequency(campaigns), nil
}

func (s *Service) GetClientDashboard(ctx context.Context, clientID string) (*domain.ClientDashboard, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "", "client_id é obrigatório")
	}

	campaigns, err := s.campaignRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, NewCampaignError(
			errors.Wrapf(err, "cliente %s", clientID),
			apiErrors.ErrDatabaseOperation, "", "erro ao listar campanhas do cliente",
		)
	}
	if campaigns == nil {
		campaigns = make([]domain.Campaign, 0)
	}

	return &domain.ClientDashboard{
		ClientID:  clientID,
		Stats:     aggregating.ComputeDashboardStats(campaigns),
		Campaigns: campaigns,
	}, nil
}

// UpdateStatus aceita qualquer status do registro a partir de qualquer outro.
// Apenas códigos desconhecidos são rejeitados.
func (s *Service) UpdateStatus(ctx context.Context, campaignID, rawStatus string) (*domain.Campaign, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "", "id da campanha é obrigatório")
	}

	status, ok := domain.ParseStatus(rawStatus)
	if !ok {
		return nil, NewCampaignError(ErrUnknownStatus, apiErrors.ErrUnknownStatus, campaignID, rawStatus)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignError(
			errors.Wrapf(err, "campanha %s", campaignID),
			apiErrors.ErrDatabaseOperation, campaignID, "erro ao buscar campanha",
		)
	}
	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	if campaign.Status == status {
		return campaign, nil
	}

	if err := s.campaignRepo.UpdateStatus(ctx, campaignID, status); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
		}
		return nil, NewCampaignError(
			errors.Wrapf(err, "campanha %s", campaignID),
			apiErrors.ErrDatabaseOperation, campaignID, "erro ao atualizar status",
		)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"from":        campaign.Status,
		"to":          status,
	}).Infof("status da campanha %s alterado de %s para %s", campaignID, campaign.Status, status)

	updated := *campaign
	updated.Status = status
	if status == domain.StatusSentToPrint {
		updated.PrintingStatus = domain.PrintingStatusSentToPrint
	}

	s.notifyInvalidators()

	return &updated, nil
}

func (s *Service) snapshot(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return nil, NewCampaignError(
			errors.Wrap(err, ErrDatabaseOperation.Error()),
			apiErrors.ErrDatabaseOperation, "", "erro ao listar campanhas",
		)
	}

	if campaigns == nil {
		campaigns = make([]domain.Campaign, 0)
	}

	return campaigns, nil
}

func (s *Service) notifyInvalidators() {
	s.mu.RLock()
	invalidators := make([]Invalidator, len(s.invalidators))
	copy(invalidators, s.invalidators)
	s.mu.RUnlock()

	for _, invalidator := range invalidators {
		invalidator.Invalidate()
	}
}
