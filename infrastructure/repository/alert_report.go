package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const alertReportsTable = "alert_reports"

// AlertReportRepository histórico das execuções do cálculo de alertas
type AlertReportRepository interface {
	Save(ctx context.Context, report *domain.AlertReport) error
	GetLatest(ctx context.Context) (*domain.AlertReport, error)
}

type alertReportRepository struct {
	conn *postgres.Connection
}

func NewAlertReportRepository(conn *postgres.Connection) AlertReportRepository {
	return &alertReportRepository{
		conn: conn,
	}
}

func (r *alertReportRepository) Save(ctx context.Context, report *domain.AlertReport) error {
	insertSQL, insertArgs, err := squirrel.
		Insert(alertReportsTable).
		Columns("id", "generated_at", "total", "critical", "high", "medium", "campaign_ids").
		Values(
			report.ID,
			report.GeneratedAt,
			report.Total,
			report.Critical,
			report.High,
			report.Medium,
			pq.Array(report.CampaignIDs),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&report.CreatedAt)
}

func (r *alertReportRepository) GetLatest(ctx context.Context) (*domain.AlertReport, error) {
	selectSQL, selectArgs, err := squirrel.
		Select("id", "generated_at", "total", "critical", "high", "medium", "campaign_ids", "created_at").
		From(alertReportsTable).
		OrderBy("generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var report domain.AlertReport
	err = r.conn.QueryRowContext(ctx, selectSQL, selectArgs...).Scan(
		&report.ID,
		&report.GeneratedAt,
		&report.Total,
		&report.Critical,
		&report.High,
		&report.Medium,
		pq.Array(&report.CampaignIDs),
		&report.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}
