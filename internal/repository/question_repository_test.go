package repository

import (
	"testing"

	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without a live connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// The catalog is zero-based and the quiz driver looks questions up by
// their explicit id, so the seed INSERT must carry id 0 literally
// instead of deferring to the pk sequence.
func TestQuestionSeed_InsertKeepsZeroBasedIDs(t *testing.T) {
	db := dryRunDB(t)

	questions := []model.Question{
		{ID: 0, Text: "Io ...... 28 anni."},
		{ID: 1, Text: "Paolo ha ...... macchina rossa."},
	}

	stmt := db.Session(&gorm.Session{DryRun: true}).Create(&questions).Statement
	require.NotNil(t, stmt)

	assert.Contains(t, stmt.SQL.String(), `INSERT INTO "questions"`)
	assert.NotContains(t, stmt.SQL.String(), "DEFAULT")
	assert.Contains(t, stmt.Vars, 0)
	assert.Contains(t, stmt.Vars, 1)
}
