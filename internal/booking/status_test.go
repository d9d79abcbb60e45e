package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusAccepted},
		{StatusPending, StatusRefused},
		{StatusPending, StatusCancelled},
		{StatusAccepted, StatusCancelled},
		{StatusAccepted, StatusCompleted},
		{StatusAccepted, StatusFailed},
		{StatusCompleted, StatusRefunded},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusFailed},
		{StatusPending, StatusRefunded},
		{StatusAccepted, StatusRefused},
		{StatusAccepted, StatusPending},
		{StatusCompleted, StatusAccepted},
		{StatusCompleted, StatusCancelled},
		{StatusRefused, StatusAccepted},
		{StatusCancelled, StatusPending},
		{StatusFailed, StatusCompleted},
		{StatusRefunded, StatusCompleted},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be illegal", tc.from, tc.to)
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []Status{StatusRefused, StatusCancelled, StatusFailed, StatusRefunded} {
		assert.True(t, s.Terminal(), "%s should be terminal", s)
	}
	for _, s := range []Status{StatusPending, StatusAccepted, StatusCompleted} {
		assert.False(t, s.Terminal(), "%s should not be terminal", s)
	}
}

func TestOccupying(t *testing.T) {
	assert.True(t, StatusPending.Occupying())
	assert.True(t, StatusAccepted.Occupying())
	for _, s := range []Status{StatusRefused, StatusCancelled, StatusCompleted, StatusFailed, StatusRefunded} {
		assert.False(t, s.Occupying(), "%s should not occupy", s)
	}
}

func TestParseStatus(t *testing.T) {
	got, ok := ParseStatus("accepted")
	assert.True(t, ok)
	assert.Equal(t, StatusAccepted, got)

	_, ok = ParseStatus("active")
	assert.False(t, ok)
	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(RoleOperator, StatusAccepted))
	assert.NoError(t, Authorize(RoleOperator, StatusRefunded))
	assert.NoError(t, Authorize(RoleRenter, StatusCancelled))
	assert.NoError(t, Authorize(RolePayment, StatusRefunded))

	assert.ErrorIs(t, Authorize(RoleRenter, StatusAccepted), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(RoleRenter, StatusCompleted), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(RolePayment, StatusAccepted), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(Role("unknown"), StatusCancelled), ErrUnauthorized)
}
