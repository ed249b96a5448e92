package queries_test

import (
	"testing"

	"restobot/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrowseMenuQuery(t *testing.T) {
	t.Run("should create query without category", func(t *testing.T) {
		query := queries.NewBrowseMenuQuery("")

		require.NoError(t, query.Validate())
		assert.False(t, query.HasCategory())
		assert.Empty(t, query.Category())
	})

	t.Run("should trim the category", func(t *testing.T) {
		query := queries.NewBrowseMenuQuery("  Main ")

		require.NoError(t, query.Validate())
		assert.True(t, query.HasCategory())
		assert.Equal(t, "Main", query.Category())
	})

	t.Run("should treat blank category as absent", func(t *testing.T) {
		query := queries.NewBrowseMenuQuery("   ")

		assert.False(t, query.HasCategory())
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.BrowseMenuQuery

		require.ErrorIs(t, query.Validate(), queries.ErrBrowseMenuQueryIsNotConstructed)
	})
}
