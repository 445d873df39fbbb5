package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger dependência verificada pelo healthcheck
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
}

const healthcheckTimeout = 2 * time.Second

// HealthcheckHandler responde 503 quando o banco não responde. db nil não é verificado.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:   "ok",
			Time:     time.Now().Format(time.RFC3339),
			Database: "unknown",
		}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			resp.Database = "up"
			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				resp.Status = "degraded"
				resp.Database = "down"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, resp)
	})
}
