package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) (*bytes.Buffer, Logger) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	base.SetLevel(logrus.DebugLevel)

	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger(t)

	l.WithFields(Fields{
		"campaign_id": "c1",
		"user_id":     7,
		"created_at":  "2024-06-01",
	}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "campaign_id=c1")
	assert.Contains(t, out, "user_id=7")
	assert.NotContains(t, out, "created_at")
}

func TestWithFields_ProductionKeepsAll(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	l.WithField("created_at", "2024-06-01").Info("ok")
	assert.Contains(t, buf.String(), "created_at=2024-06-01")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger(t)

	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	l.WithContext(ctx).Info("req")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
