// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

// ErrNoRowsAffected update sem nenhuma linha correspondente
var ErrNoRowsAffected = errors.New("nenhum registro afetado")

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Campaign, error)
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// campaignSelect consulta base com os resumos de cliente e parceiro
func campaignSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.order_number",
			"c.name",
			"c.status",
			"c.printing_status",
			"c.created_at",
			"c.postal_codes",
			"c.estimated_price",
			"c.quantity",
			"cl.id",
			"cl.company_name",
			"cl.email",
			"cl.postal_code",
			"p.id",
			"p.company_name",
			"p.city",
		).
		From(campaignsTable).
		Join("clients cl ON cl.id = c.client_id").
		LeftJoin("partners p ON p.id = c.partner_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, campaignSelect().OrderBy("c.created_at DESC NULLS LAST", "c.id ASC"))
}

func (r *campaignRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	return r.list(ctx, campaignSelect().
		Where(squirrel.Eq{"c.client_id": clientID}).
		OrderBy("c.created_at DESC NULLS LAST", "c.id ASC"))
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := campaignSelect().
		Where(squirrel.Eq{"c.id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, campaignsSQL, campaignsArgs...)

	campaign, err := deserializeCampaign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	query := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	// Enviar para impressão também marca o status de impressão
	if status == domain.StatusSentToPrint {
		query = query.Set("printing_status", domain.PrintingStatusSentToPrint)
	}

	updateSQL, updateArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, updateSQL, updateArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (r *campaignRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, campaignsSQL, campaignsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return campaigns, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializeCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign    domain.Campaign
		createdAt   sql.NullTime
		client      domain.ClientSummary
		partnerID   sql.NullString
		partnerName sql.NullString
		partnerCity sql.NullString
	)

	if err := row.Scan(
		&campaign.ID,
		&campaign.OrderNumber,
		&campaign.Name,
		&campaign.Status,
		&campaign.PrintingStatus,
		&createdAt,
		&campaign.PostalCodes,
		&campaign.EstimatedPrice,
		&campaign.Quantity,
		&client.ID,
		&client.CompanyName,
		&client.Email,
		&client.PostalCode,
		&partnerID,
		&partnerName,
		&partnerCity,
	); err != nil {
		return nil, err
	}

	if createdAt.Valid {
		campaign.CreatedAt = createdAt.Time.Format(time.RFC3339Nano)
	}

	campaign.Client = &client

	if partnerID.Valid {
		campaign.Partner = &domain.PartnerSummary{
			ID:          partnerID.String,
			CompanyName: partnerName.String,
			City:        partnerCity.String,
		}
	}

	return &campaign, nil
}
