package commands_test

import (
	"fmt"
	"testing"

	"restobot/internal/core/application/usecases/commands"
	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should accept forward lifecycle statuses", func(t *testing.T) {
		for _, target := range []order.Status{
			order.Confirmed, order.Preparing, order.Ready, order.Delivered,
		} {
			t.Run(target.String(), func(t *testing.T) {
				id := kernel.NewUUID()

				cmd, err := commands.NewUpdateOrderStatusCommand(id, target)

				require.NoError(t, err)
				require.NoError(t, cmd.Validate())
				assert.True(t, cmd.OrderID().IsEqual(id))
				assert.Equal(t, target, cmd.Target())
			})
		}
	})

	t.Run("should reject statuses with dedicated operations", func(t *testing.T) {
		for _, target := range []order.Status{
			order.Pending, order.Cancelled, order.Modified,
		} {
			t.Run(target.String(), func(t *testing.T) {
				_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), target)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("'%s' cannot be set directly", target.String()))
			})
		}
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Confirmed)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
