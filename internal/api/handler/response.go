package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos serviços para o formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		if apiErrors.StatusFor(campaignErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		}

		var details any
		if campaignErr.CampaignID != "" {
			details = map[string]any{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
