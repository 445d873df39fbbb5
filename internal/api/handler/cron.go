package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDeadlineAlerts = "deadline-alerts"
	CronJobTypeAll            = "all"
)

// CronJob serviço agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DeadlineAlertSyncService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.DeadlineAlertSyncService != nil {
		jobs[CronJobTypeDeadlineAlerts] = s.DeadlineAlertSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: deadline-alerts, all", nil)
				return
			}
			if running, _ := job.GetStatus()["sync_running"].(bool); running {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
