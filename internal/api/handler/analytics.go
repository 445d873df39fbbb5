package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

// GetAnalytics dashboard administrativo
func GetAnalytics(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := service.GetAnalytics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, http.StatusOK, analytics)
	}
}

func GetPostalCodes(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frequencies, err := service.GetPostalCodes(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular códigos postais")
			return
		}

		writeJSON(w, http.StatusOK, frequencies)
	}
}

// GetClientDashboard campanhas e contadores de um cliente
func GetClientDashboard(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		dashboard, err := service.GetClientDashboard(r.Context(), clientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar dashboard do cliente")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}
