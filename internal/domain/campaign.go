package domain

import (
	"errors"
	"strings"
	"time"
)

// DefaultBagsPerCampaign quantidade de sacolas usada quando a campanha não informa quantity
const DefaultBagsPerCampaign = 1000

const (
	PrintingStatusNotSent     = "NOT_SENT"
	PrintingStatusSentToPrint = "SENT_TO_PRINT"
)

var (
	ErrMissingCreatedAt = errors.New("campaign without created_at")
	ErrInvalidCreatedAt = errors.New("campaign with invalid created_at")
)

// createdAtLayouts formatos aceitos para created_at, do mais comum ao menos comum
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ClientSummary dados resumidos do cliente desnormalizados na campanha
type ClientSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
}

// PartnerSummary dados resumidos do parceiro de distribuição
type PartnerSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	City        string `json:"city,omitempty"`
}

// Campaign representa um pedido de distribuição de sacolas.
// CreatedAt é mantido no formato de transporte e interpretado por CreatedTime.
type Campaign struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	Name           string          `json:"name"`
	Status         CampaignStatus  `json:"status"`
	PrintingStatus string          `json:"printing_status,omitempty"`
	CreatedAt      string          `json:"created_at"`
	PostalCodes    string          `json:"postal_codes"`
	EstimatedPrice Amount          `json:"estimated_price"`
	Quantity       int             `json:"quantity,omitempty"`
	Client         *ClientSummary  `json:"client,omitempty"`
	Partner        *PartnerSummary `json:"partner,omitempty"`
}

// CreatedTime interpreta o campo created_at
func (c Campaign) CreatedTime() (time.Time, error) {
	raw := strings.TrimSpace(c.CreatedAt)
	if raw == "" {
		return time.Time{}, ErrMissingCreatedAt
	}

	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidCreatedAt
}

// PostalCodeTokens separa postal_codes por vírgula, remove espaços e descarta tokens vazios.
// Duplicados são mantidos.
func (c Campaign) PostalCodeTokens() []string {
	return SplitPostalCodes(c.PostalCodes)
}

// HasPostalCode verifica se o código aparece como token exato
func (c Campaign) HasPostalCode(code string) bool {
	code = strings.TrimSpace(code)
	for _, token := range c.PostalCodeTokens() {
		if token == code {
			return true
		}
	}
	return false
}

// ClientCompanyName retorna o nome da empresa do cliente, ou vazio
func (c Campaign) ClientCompanyName() string {
	if c.Client == nil {
		return ""
	}
	return c.Client.CompanyName
}

// Bags retorna a quantidade de sacolas da campanha
func (c Campaign) Bags() int {
	if c.Quantity <= 0 {
		return DefaultBagsPerCampaign
	}
	return c.Quantity
}

// SelectableForPrint indica se o admin pode incluir a campanha em um lote de impressão
func (c Campaign) SelectableForPrint() bool {
	return c.Status == StatusCreated && c.PrintingStatus != PrintingStatusSentToPrint
}

// SplitPostalCodes tokeniza a forma de transporte dos códigos postais
func SplitPostalCodes(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}

	return codes
}

// UpdateCampaignStatusRequest corpo da requisição de alteração de status
type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}
