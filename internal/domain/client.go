package domain

import "time"

// Client empresa que encomenda campanhas
type Client struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	CreatedAt   time.Time `json:"created_at"`
}
