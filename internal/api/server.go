package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	campaignService campaigning.CampaignService,
	authenticator authenticating.Authenticator,
	alertSyncService *scheduler.DeadlineAlertSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	var reports handler.ReportProvider
	if alertSyncService != nil {
		cronServices.DeadlineAlertSyncService = alertSyncService
		reports = alertSyncService
	}

	rt := NewRouter(db, campaignService, authenticator, reports, cronServices)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter registra todas as rotas da API, sem os middlewares globais
func NewRouter(
	db handler.Pinger,
	campaignService campaigning.CampaignService,
	authenticator authenticating.Authenticator,
	reports handler.ReportProvider,
	cronServices handler.CronJobServices,
) router.Router {
	return router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.Alerts(campaignService, reports)...),
		router.WithRoutes(handler.Analytics(campaignService)...),
		router.WithRoutes(handler.Snapshots(campaignService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
