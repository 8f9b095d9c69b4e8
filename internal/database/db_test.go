package database

import (
	"context"
	"path/filepath"
	"testing"

	"fiesta/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenLogsSQLThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.New(core).Sugar())
	require.NoError(t, err)
	store := NewGuestStore(db)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &models.Guest{ID: "a", Name: "Ana", Email: "ana@example.com"}, nil))
	require.Error(t, store.Create(ctx, &models.Guest{ID: "b", Name: "Ana", Email: "ana@example.com"}, nil))

	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "INSERT", "duplicate email must not be logged as a failure")
		assert.NotContains(t, entry.Message, "ana@example.com")
	}

	require.Error(t, db.Exec("SELECT * FROM missing_table").Error)
	assert.Equal(t, 1, logs.FilterMessageSnippet("missing_table").Len())
}
