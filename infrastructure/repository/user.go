package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const (
	usersTable = "users u"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Insert("users").
		Columns("name", "email", "password_hash", "active", "role_id", "client_id", "partner_id").
		Values(user.Name, user.Email, user.PasswordHash, user.Active, user.RoleID, user.ClientID, user.PartnerID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select(
			"u.id",
			"u.name",
			"u.email",
			"u.password_hash",
			"u.active",
			"u.role_id",
			"u.client_id",
			"u.partner_id",
			"COALESCE(cl.company_name, p.company_name, '')",
			"u.created_at",
			"u.updated_at",
		).
		From(usersTable).
		LeftJoin("clients cl ON cl.id = u.client_id").
		LeftJoin("partners p ON p.id = u.partner_id").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		user      domain.User
		clientID  sql.NullString
		partnerID sql.NullString
	)

	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&clientID,
		&partnerID,
		&user.CompanyName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		user.ClientID = &clientID.String
	}
	if partnerID.Valid {
		user.PartnerID = &partnerID.String
	}

	return &user, nil
}
