package client

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/models"
)

func testBundle() models.SchemaBundle {
	return models.SchemaBundle{
		ServerVersion: "1.0.0",
		Studies:       []models.Study{{ID: "s1", Title: models.NewLocalizedStr("Pilot")}},
		Forms:         []models.InputForm{{ID: "f1", Identifier: "baseline", Fields: []string{"x1"}}},
		Fields: []models.InputField{
			{ID: "x1", Identifier: "weight", Label: &models.LocalizedStr{Plain: "Weight"}, Datatype: models.FloatType},
		},
	}
}

func TestMirror_Replace(t *testing.T) {
	var m Mirror
	assert.False(t, m.Snapshot().Loaded())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Replace(m.Epoch(), testBundle(), at)

	snap := m.Snapshot()
	require.True(t, snap.Loaded())
	assert.Equal(t, at, snap.FetchedAt)
	assert.Equal(t, 1, snap.Revision)
	assert.NoError(t, snap.Err)
	assert.Contains(t, snap.Results, "x1")
	assert.Contains(t, snap.Results, "f1")
	assert.Contains(t, snap.Results, "s1")
	assert.Contains(t, snap.Catalog.Fields, "x1")
}

func TestMirror_FailKeepsSchema(t *testing.T) {
	var m Mirror
	m.Replace(m.Epoch(), testBundle(), time.Now())

	boom := errors.New("server unavailable")
	m.Fail(m.Epoch(), boom)

	snap := m.Snapshot()
	assert.True(t, snap.Loaded())
	assert.ErrorIs(t, snap.Err, boom)

	m.Replace(m.Epoch(), testBundle(), time.Now())
	assert.NoError(t, m.Snapshot().Err)
	assert.Equal(t, 2, m.Snapshot().Revision)
}

func TestMirror_Clear(t *testing.T) {
	var m Mirror
	m.Replace(m.Epoch(), testBundle(), time.Now())
	m.Clear()

	snap := m.Snapshot()
	assert.False(t, snap.Loaded())
	assert.Empty(t, snap.Bundle.Forms)
	assert.Equal(t, 1, snap.Revision)
}

func TestMirror_StaleEpochIsDropped(t *testing.T) {
	var m Mirror
	epoch := m.Epoch()
	m.Clear()

	assert.False(t, m.Replace(epoch, testBundle(), time.Now()))
	assert.False(t, m.Fail(epoch, errors.New("late")))

	snap := m.Snapshot()
	assert.False(t, snap.Loaded())
	assert.NoError(t, snap.Err)
	assert.Zero(t, snap.Revision)

	assert.True(t, m.Replace(m.Epoch(), testBundle(), time.Now()))
	assert.Equal(t, 1, m.Snapshot().Revision)
}
