package domain

import "strings"

// CampaignStatus representa uma etapa do ciclo de vida de uma campanha
type CampaignStatus string

const (
	StatusCreated           CampaignStatus = "CREATED"
	StatusAssignedToPartner CampaignStatus = "ASSIGNED_TO_PARTNER"
	StatusSentToPrint       CampaignStatus = "SENT_TO_PRINT"
	StatusInPrinting        CampaignStatus = "IN_PRINTING"
	StatusPrinted           CampaignStatus = "PRINTED"
	StatusInDistribution    CampaignStatus = "IN_DISTRIBUTION"
	StatusDelivered         CampaignStatus = "DELIVERED"
	StatusFinished          CampaignStatus = "FINISHED"
)

// NeutralStatusColor é o estilo usado para status desconhecidos
const (
	NeutralStatusColor = "slate"
	NeutralStatusIcon  = "📄"
)

// StatusInfo descreve como um status é exibido nos dashboards
type StatusInfo struct {
	Code  CampaignStatus `json:"code"`
	Label string         `json:"label"`
	Color string         `json:"color"`
	Icon  string         `json:"icon"`
	Known bool           `json:"known"`
}

// statusRegistry segue a ordem canônica do ciclo de vida.
// A ordem é apenas informativa: qualquer status pode ser definido a partir de qualquer outro.
var statusRegistry = []StatusInfo{
	{Code: StatusCreated, Label: "Créée", Color: "blue", Icon: "📝", Known: true},
	{Code: StatusAssignedToPartner, Label: "Attribuée", Color: "purple", Icon: "👥", Known: true},
	{Code: StatusSentToPrint, Label: "Envoyée à l'impression", Color: "amber", Icon: "🖨️", Known: true},
	{Code: StatusInPrinting, Label: "En impression", Color: "amber", Icon: "🖨️", Known: true},
	{Code: StatusPrinted, Label: "Imprimée", Color: "emerald", Icon: "✅", Known: true},
	{Code: StatusInDistribution, Label: "En distribution", Color: "purple", Icon: "🚚", Known: true},
	{Code: StatusDelivered, Label: "Livrée", Color: "green", Icon: "📦", Known: true},
	{Code: StatusFinished, Label: "Terminée", Color: "slate", Icon: "🏁", Known: true},
}

var statusByCode = func() map[CampaignStatus]StatusInfo {
	m := make(map[CampaignStatus]StatusInfo, len(statusRegistry))
	for _, info := range statusRegistry {
		m[info.Code] = info
	}
	return m
}()

// Statuses retorna todos os status conhecidos na ordem do ciclo de vida
func Statuses() []StatusInfo {
	statuses := make([]StatusInfo, len(statusRegistry))
	copy(statuses, statusRegistry)
	return statuses
}

// LookupStatus retorna as informações de exibição de um status.
// Para um código desconhecido retorna o próprio código como label e um estilo neutro.
func LookupStatus(code CampaignStatus) StatusInfo {
	if info, ok := statusByCode[code]; ok {
		return info
	}

	return StatusInfo{
		Code:  code,
		Label: string(code),
		Color: NeutralStatusColor,
		Icon:  NeutralStatusIcon,
	}
}

// Label atalho para LookupStatus(s).Label
func (s CampaignStatus) Label() string {
	return LookupStatus(s).Label
}

// IsKnown indica se o status faz parte do registro
func (s CampaignStatus) IsKnown() bool {
	_, ok := statusByCode[s]
	return ok
}

// IsTerminal indica se a campanha já foi entregue ou finalizada.
// Campanhas terminais nunca geram alerta de prazo.
func (s CampaignStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFinished
}

// IsActive indica se a campanha ainda está antes da impressão concluída
func (s CampaignStatus) IsActive() bool {
	switch s {
	case StatusCreated, StatusAssignedToPartner, StatusSentToPrint, StatusInPrinting:
		return true
	}
	return false
}

// NormalizeStatus trata status vazio ou desconhecido como CREATED
func NormalizeStatus(s CampaignStatus) CampaignStatus {
	if s.IsKnown() {
		return s
	}
	return StatusCreated
}

// ParseStatus converte a entrada do usuário em um status conhecido
func ParseStatus(raw string) (CampaignStatus, bool) {
	status := CampaignStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.IsKnown() {
		return "", false
	}
	return status, true
}
