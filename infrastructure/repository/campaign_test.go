package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = f.values[i].(string)
		case *domain.CampaignStatus:
			*v = f.values[i].(domain.CampaignStatus)
		case *int:
			*v = f.values[i].(int)
		case *sql.NullTime:
			*v = f.values[i].(sql.NullTime)
		case *sql.NullString:
			*v = f.values[i].(sql.NullString)
		case sql.Scanner:
			if err := v.Scan(f.values[i]); err != nil {
				return err
			}
		default:
			return errors.New("unexpected destination")
		}
	}
	return nil
}

func TestCampaignSelect(t *testing.T) {
	query, args, err := campaignSelect().ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM campaigns c JOIN clients cl ON cl.id = c.client_id LEFT JOIN partners p ON p.id = c.partner_id")
	assert.Empty(t, args)

	query, args, err = campaignSelect().Where("c.client_id = ?", "cl-1").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE c.client_id = $1")
	assert.Equal(t, []any{"cl-1"}, args)
}

func TestDeserializeCampaign(t *testing.T) {
	created := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	row := fakeRow{values: []any{
		"c1", "CMD-ab12CD", "Boulangerie", domain.StatusInPrinting, domain.PrintingStatusSentToPrint,
		sql.NullTime{Time: created, Valid: true},
		"14000,14100",
		[]byte("149.90"),
		2000,
		"cl1", "Maison Dupont", "contact@dupont.fr", "14000",
		sql.NullString{String: "p1", Valid: true}, sql.NullString{String: "Distrib Caen", Valid: true}, sql.NullString{String: "Caen", Valid: true},
	}}

	campaign, err := deserializeCampaign(row)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-02T09:30:00Z", campaign.CreatedAt)
	require.True(t, campaign.EstimatedPrice.Valid)
	assert.Equal(t, "149.9", campaign.EstimatedPrice.Decimal.String())
	assert.Equal(t, "Maison Dupont", campaign.ClientCompanyName())
	require.NotNil(t, campaign.Partner)
	assert.Equal(t, "Distrib Caen", campaign.Partner.CompanyName)
	assert.Equal(t, 2000, campaign.Bags())
}

func TestDeserializeCampaign_NullableColumns(t *testing.T) {
	row := fakeRow{values: []any{
		"c2", "CMD-zz99YY", "Sans date", domain.StatusCreated, domain.PrintingStatusNotSent,
		sql.NullTime{},
		"",
		nil,
		0,
		"cl1", "Maison Dupont", "", "",
		sql.NullString{}, sql.NullString{}, sql.NullString{},
	}}

	campaign, err := deserializeCampaign(row)
	require.NoError(t, err)

	assert.Empty(t, campaign.CreatedAt)
	assert.False(t, campaign.EstimatedPrice.Valid)
	assert.Nil(t, campaign.Partner)

	_, err = campaign.CreatedTime()
	assert.ErrorIs(t, err, domain.ErrMissingCreatedAt)
}

func TestDeserializeCampaign_ScanError(t *testing.T) {
	_, err := deserializeCampaign(fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
