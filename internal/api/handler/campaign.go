package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

type AlertsResponse struct {
	GeneratedAt time.Time                `json:"generated_at"`
	MaxDays     int                      `json:"max_days"`
	WarningDays int                      `json:"warning_days"`
	Total       int                      `json:"total"`
	Alerts      []domain.AlertedCampaign `json:"alerts"`
}

// ReportProvider último relatório gravado pelo agendador de alertas
type ReportProvider interface {
	LatestReport(ctx context.Context) (*domain.AlertReport, error)
}

// ListStatuses registro de status em ordem de ciclo de vida
func ListStatuses(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Statuses())
	}
}

func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.CampaignFilters{
			PostalCode: query.Get("postal_code"),
			SearchTerm: query.Get("search"),
		}

		campaigns, err := service.ListCampaigns(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func UpdateCampaignStatus(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		var req domain.UpdateCampaignStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if strings.TrimSpace(req.Status) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "status é obrigatório", nil)
			return
		}

		campaign, err := service.UpdateStatus(r.Context(), campaignID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status da campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

// GetAlerts campanhas perto ou além do prazo de distribuição.
// Aceita ?now= para simular outra data de referência.
func GetAlerts(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, err := utils.ParseTimestamp(r.URL.Query().Get("now"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro now inválido", nil)
			return
		}

		alerts, err := service.GetAlerts(r.Context(), now)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular alertas")
			return
		}

		writeJSON(w, http.StatusOK, newAlertsResponse(now, service.Policy().MaxDays, service.Policy().WarningDays, alerts))
	}
}

func GetLatestAlertReport(reports ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := reports.LatestReport(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar relatório de alertas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"report": report,
		})
	}
}

func newAlertsResponse(now time.Time, maxDays, warningDays int, alerts []domain.AlertedCampaign) AlertsResponse {
	return AlertsResponse{
		GeneratedAt: now,
		MaxDays:     maxDays,
		WarningDays: warningDays,
		Total:       len(alerts),
		Alerts:      alerts,
	}
}
