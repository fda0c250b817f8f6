package entities_test

import (
	"testing"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	statuses := []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusDispatched,
		entities.OrderStatusPickedUp,
		entities.OrderStatusDelivered,
		entities.OrderStatusCancelled,
		entities.OrderStatusFailed,
	}

	allowed := map[entities.OrderStatus]map[entities.OrderStatus]bool{
		entities.OrderStatusPending:    {entities.OrderStatusConfirmed: true, entities.OrderStatusCancelled: true},
		entities.OrderStatusConfirmed:  {entities.OrderStatusDispatched: true, entities.OrderStatusCancelled: true},
		entities.OrderStatusDispatched: {entities.OrderStatusPickedUp: true, entities.OrderStatusFailed: true},
		entities.OrderStatusPickedUp:   {entities.OrderStatusDelivered: true},
	}

	// Полный перебор пар: переход разрешён только если он есть в allowed.
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, entities.OrderStatusDelivered.Terminal())
	assert.True(t, entities.OrderStatusCancelled.Terminal())
	assert.True(t, entities.OrderStatusFailed.Terminal())

	assert.False(t, entities.OrderStatusPending.Terminal())
	assert.False(t, entities.OrderStatusConfirmed.Terminal())
	assert.False(t, entities.OrderStatusDispatched.Terminal())
	assert.False(t, entities.OrderStatusPickedUp.Terminal())

	// Неизвестный статус не терминальный, он невалидный.
	assert.False(t, entities.OrderStatus("unknown").Terminal())
	assert.False(t, entities.OrderStatus("unknown").Valid())
}

func TestInvalidTransitionError_Error(t *testing.T) {
	err := &entities.InvalidTransitionError{
		From: entities.OrderStatusDelivered,
		To:   entities.OrderStatusCancelled,
	}
	assert.Equal(t, "invalid_transition: delivered -> cancelled is not allowed", err.Error())
}
