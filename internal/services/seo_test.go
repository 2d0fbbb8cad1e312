package services

import (
	"testing"

	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSEOMetaUpsertsByRoute(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SaveSEOMeta(db, &models.SEOMeta{Route: "/", Title: "Home"}))
	require.NoError(t, SaveSEOMeta(db, &models.SEOMeta{Route: "/services", Title: "Services"}))
	require.NoError(t, SaveSEOMeta(db, &models.SEOMeta{Route: "/", Title: "Home v2", Description: "desc"}))

	rows, err := GetSEOMeta(db, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = GetSEOMeta(db, "/")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Home v2", rows[0].Title)
	assert.Equal(t, "desc", rows[0].Description)

	actions := historyActions(t, db, SEOAudit, "/")
	assert.Equal(t, []string{
		"upsert_before", "upsert_after",
		"upsert_before", "upsert_after",
	}, actions)
}

func TestRestoreSEOMeta(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SaveSEOMeta(db, &models.SEOMeta{Route: "/", Title: "Home"}))
	entries, err := SEOAudit.List(db, "/", audit.DefaultListLimit)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	target := entries[0]

	require.NoError(t, SaveSEOMeta(db, &models.SEOMeta{Route: "/", Title: "Clickbait"}))
	require.NoError(t, RestoreSEOMeta(db, "/", target.ID))

	rows, err := GetSEOMeta(db, "/")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Home", rows[0].Title)

	// History from another route never restores here.
	err = RestoreSEOMeta(db, "/services", target.ID)
	assert.ErrorIs(t, err, audit.ErrNotFound)
}
