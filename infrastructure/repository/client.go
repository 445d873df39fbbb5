package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const clientsTable = "clients"

type ClientRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	clientsSQL, clientsArgs, err := squirrel.
		Select("id", "company_name", "email", "city", "postal_code", "created_at").
		From(clientsTable).
		OrderBy("company_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, clientsSQL, clientsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.CompanyName,
			&client.Email,
			&client.City,
			&client.PostalCode,
			&client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return clients, nil
}
