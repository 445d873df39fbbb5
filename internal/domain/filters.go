package domain

// CampaignFilters critérios combinados (AND) de filtragem das campanhas
type CampaignFilters struct {
	PostalCode string `json:"postal_code"`
	SearchTerm string `json:"search"`
}

// SnapshotFilterRequest corpo de POST /v1/snapshots/filter
type SnapshotFilterRequest struct {
	Campaigns  []Campaign `json:"campaigns"`
	PostalCode string     `json:"postal_code"`
	SearchTerm string     `json:"search"`
}

// SnapshotRequest corpo dos demais endpoints de snapshot
type SnapshotRequest struct {
	Campaigns []Campaign `json:"campaigns"`
	Now       string     `json:"now,omitempty"`
}
