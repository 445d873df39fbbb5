package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin   = 1
	RolePartner = 2
	RoleClient  = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CompanyName  string    `json:"company_name"`
	ClientID     *string   `json:"client_id"`  // Preenchido apenas para clientes
	PartnerID    *string   `json:"partner_id"` // Preenchido apenas para parceiros
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserEmail    string
	UserRoleID   int
	UserClientID *string
	jwt.RegisteredClaims
}

// CanSeeClient verifica se o usuário pode consultar o dashboard de um cliente
func (c *Claims) CanSeeClient(clientID string) bool {
	if c == nil {
		return false
	}
	if c.UserRoleID == RoleAdmin {
		return true
	}
	return c.UserRoleID == RoleClient && c.UserClientID != nil && *c.UserClientID == clientID
}
