package order_test

import (
	"fmt"
	"testing"

	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every lifecycle status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "DRAFT", order.Draft.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, status := range order.AllStatuses() {
		parsed, err := order.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	parsed, err := order.ParseStatus(" packing ")
	require.NoError(t, err)
	assert.Equal(t, order.Packing, parsed)

	_, err = order.ParseStatus("REVIEWING")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

// Exhaustive check of all 6x6 pairs against the legal edge set.
func TestStatus_Transition_AllPairs(t *testing.T) {
	legal := map[[2]order.Status]bool{
		{order.Draft, order.Confirmed}:     true,
		{order.Draft, order.Cancelled}:     true,
		{order.Confirmed, order.Packing}:   true,
		{order.Confirmed, order.Cancelled}: true,
		{order.Packing, order.Shipped}:     true,
		{order.Shipped, order.Completed}:   true,
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.Transition(to)

				if legal[[2]order.Status{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.ErrorIs(t, err, errs.ErrIllegalTransition)
				var illegal *errs.IllegalTransitionError
				require.ErrorAs(t, err, &illegal)
				assert.Equal(t, from.String(), illegal.From)
				assert.Equal(t, to.String(), illegal.To)
				assert.False(t, from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range order.AllStatuses() {
		terminal := status == order.Completed || status == order.Cancelled
		assert.Equal(t, terminal, status.IsTerminal(), status.String())
	}
}

func TestStatus_Transition_RejectsUnknownTarget(t *testing.T) {
	_, err := order.Draft.Transition(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
