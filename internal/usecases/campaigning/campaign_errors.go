package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrUnknownStatus       = errors.New("status desconhecido")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// CampaignError erro com o código devolvido pela API
type CampaignError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(baseErr error, code, campaignID, details string) *CampaignError {
	return &CampaignError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

// IsValidationError erros causados pela entrada do usuário
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownStatus) || errors.Is(err, ErrMissingRequiredData)
}
