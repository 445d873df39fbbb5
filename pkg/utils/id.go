package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// Prefixos dos ids gerados pela aplicação
const (
	PrefixClient      = "CLI-"
	PrefixPartner     = "PRT-"
	PrefixCampaign    = "CMP-"
	PrefixOrder       = "CMD-"
	PrefixAlertReport = "ALR-"
)

func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// GenerateIDWithPrefix ex: "CMD-4fK9aZ"
func GenerateIDWithPrefix(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}
