package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

func main() {
	// O .env é procurado a partir do diretório deste arquivo
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	alertReportRepo := repository.NewAlertReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	campaignService := campaigning.NewService(campaignRepo, clientRepo, cfg)

	deadlineAlertSyncService := scheduler.NewDeadlineAlertSyncService(
		campaignService,
		alertReportRepo,
		cfg,
	)

	// Alterações de status disparam o recálculo dos alertas
	campaignService.OnInvalidate(deadlineAlertSyncService)

	if err := deadlineAlertSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de prazo")
	} else {
		logrus.Info("Agendador de alertas de prazo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		campaignService,
		authenticator,
		deadlineAlertSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
