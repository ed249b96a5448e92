package queries_test

import (
	"testing"

	"restobot/internal/core/application/usecases/queries"
	"restobot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEstimateDeliveryQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewEstimateDeliveryQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := queries.NewEstimateDeliveryQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.EstimateDeliveryQuery

		require.ErrorIs(t, query.Validate(), queries.ErrEstimateDeliveryQueryIsNotConstructed)
	})
}
