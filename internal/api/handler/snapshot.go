package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Os handlers de snapshot calculam sobre as campanhas enviadas no corpo,
// sem consultar o banco.

func decodeSnapshot(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo deve conter a lista de campanhas", nil)
		return false
	}
	return true
}

func SnapshotAlerts(policy alerting.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SnapshotRequest
		if !decodeSnapshot(w, r, &req) {
			return
		}

		now, err := utils.ParseTimestamp(req.Now, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campo now inválido", nil)
			return
		}

		alerts := alerting.ComputeAlertsWithPolicy(req.Campaigns, now, policy)
		writeJSON(w, http.StatusOK, newAlertsResponse(now, policy.MaxDays, policy.WarningDays, alerts))
	}
}

func SnapshotAggregates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SnapshotRequest
		if !decodeSnapshot(w, r, &req) {
			return
		}

		writeJSON(w, http.StatusOK, aggregating.ComputeAggregates(req.Campaigns))
	}
}

func SnapshotPostalCodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SnapshotRequest
		if !decodeSnapshot(w, r, &req) {
			return
		}

		writeJSON(w, http.StatusOK, aggregating.ComputePostalCodeFrequency(req.Campaigns))
	}
}

func SnapshotFilter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SnapshotFilterRequest
		if !decodeSnapshot(w, r, &req) {
			return
		}

		writeJSON(w, http.StatusOK, filtering.ApplyFilters(req.Campaigns, req.PostalCode, req.SearchTerm))
	}
}
