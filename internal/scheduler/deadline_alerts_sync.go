// Package scheduler contém os serviços de agendamento em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/debounce"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// AlertSource calcula os alertas de prazo sobre o snapshot atual
type AlertSource interface {
	GetAlerts(ctx context.Context, now time.Time) ([]domain.AlertedCampaign, error)
}

type DeadlineAlertSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Debounce     time.Duration
	Location     *time.Location
}

// DeadlineAlertSyncService recalcula os alertas de prazo e grava um AlertReport.
// Roda pelo cron diário e também após alterações de status, com debounce.
type DeadlineAlertSyncService struct {
	scheduler  *gocron.Scheduler
	alerts     AlertSource
	reportRepo repository.AlertReportRepository
	config     DeadlineAlertSyncConfig
	debouncer  *debounce.Debouncer
	now        func() time.Time

	baseCtx context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.AlertReport
	lastError           string
	invalidations       int

	// Invalidação que chegou com uma sincronização em andamento
	recomputePending bool
}

func NewDeadlineAlertSyncService(
	alerts AlertSource,
	reportRepo repository.AlertReportRepository,
	cfg *config.Config,
) *DeadlineAlertSyncService {
	syncConfig := DeadlineAlertSyncConfig{
		CronSchedule: cfg.AlertSync.CronSchedule,
		SyncEnabled:  cfg.AlertSync.Enabled,
		Debounce:     cfg.AlertSync.Debounce(),
		Location:     cfg.AlertSync.Location(),
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"debounce":      syncConfig.Debounce,
		"timezone":      syncConfig.Location.String(),
	}).Info("Configuração do agendador de alertas de prazo carregada")

	return &DeadlineAlertSyncService{
		scheduler:  gocron.NewScheduler(syncConfig.Location),
		alerts:     alerts,
		reportRepo: reportRepo,
		config:     syncConfig,
		debouncer:  debounce.New(syncConfig.Debounce),
		now:        time.Now,
		baseCtx:    context.Background(),
	}
}

func (s *DeadlineAlertSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Cron de alertas de prazo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de prazo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncAlerts(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de alertas de prazo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de alertas de prazo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alertas de prazo")
		s.debouncer.Cancel()
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAlerts calcula os alertas do momento e grava o relatório.
// Retorna nil, nil se outra sincronização já estiver em andamento.
func (s *DeadlineAlertSyncService) SyncAlerts(ctx context.Context) (*domain.AlertReport, error) {
	return s.runSync(ctx, false)
}

// runSync com markPending, uma sincronização em andamento fica marcada para
// rodar de novo ao terminar, já que pode ter lido o snapshot antigo
func (s *DeadlineAlertSyncService) runSync(ctx context.Context, markPending bool) (*domain.AlertReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		if markPending {
			s.recomputePending = true
		}
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de alertas de prazo já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	report, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastReport = report
	}
	rerun := s.recomputePending
	s.recomputePending = false
	s.syncMutex.Unlock()

	if rerun {
		logrus.Info("Status alterado durante a sincronização, agendando novo recálculo de alertas")
		s.scheduleRecompute()
	}

	return report, err
}

func (s *DeadlineAlertSyncService) sync(ctx context.Context) (*domain.AlertReport, error) {
	generatedAt := s.now()

	alerts, err := s.alerts.GetAlerts(ctx, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular alertas: %w", err)
	}

	id, err := utils.GenerateIDWithPrefix(utils.PrefixAlertReport)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	report := domain.NewAlertReport(id, generatedAt, alerts)
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("erro ao salvar relatório de alertas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"total":     report.Total,
		"critical":  report.Critical,
		"high":      report.High,
		"medium":    report.Medium,
	}).Info("Relatório de alertas de prazo gerado")

	return report, nil
}

// Invalidate agenda um recálculo após a pausa configurada.
// Chamadas em sequência colapsam em uma única execução.
func (s *DeadlineAlertSyncService) Invalidate() {
	s.syncMutex.Lock()
	s.invalidations++
	s.syncMutex.Unlock()

	s.scheduleRecompute()
}

func (s *DeadlineAlertSyncService) scheduleRecompute() {
	s.syncMutex.Lock()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	s.debouncer.Trigger(func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.runSync(ctx, true); err != nil {
			logrus.WithError(err).Error("Erro no recálculo de alertas após alteração de status")
		}
	})
}

// TriggerManualSync dispara uma sincronização em background
func (s *DeadlineAlertSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de alertas de prazo já em andamento, ignorando solicitação manual")
		return
	}
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de alertas de prazo")
	go func() {
		if _, err := s.SyncAlerts(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de alertas de prazo")
		}
	}()
}

// LatestReport último relatório gerado, buscando no banco se ainda não houve execução
func (s *DeadlineAlertSyncService) LatestReport(ctx context.Context) (*domain.AlertReport, error) {
	s.syncMutex.Lock()
	report := s.lastReport
	s.syncMutex.Unlock()

	if report != nil {
		return report, nil
	}

	return s.reportRepo.GetLatest(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DeadlineAlertSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timezone":          s.config.Location.String(),
		"debounce_ms":            s.config.Debounce.Milliseconds(),
		"sync_running":           s.syncRunning,
		"invalidations":          s.invalidations,
		"pending_recompute":      s.debouncer.Pending() || s.recomputePending,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	if s.lastReport != nil {
		status["last_report_id"] = s.lastReport.ID
		status["last_report_total"] = s.lastReport.Total
	}

	return status
}
