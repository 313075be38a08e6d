package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusBlocks(t *testing.T) {
	require.True(t, StatusPending.Blocks())
	require.True(t, StatusConfirmed.Blocks())
	require.True(t, StatusCheckedIn.Blocks())
	require.False(t, StatusCheckedOut.Blocks())
	require.False(t, StatusCancelled.Blocks())
}

func TestStatusCanCancel(t *testing.T) {
	require.True(t, StatusPending.CanCancel())
	require.True(t, StatusConfirmed.CanCancel())
	require.False(t, StatusCheckedIn.CanCancel())
	require.False(t, StatusCheckedOut.CanCancel())
	require.False(t, StatusCancelled.CanCancel())
}

func TestStatusTransitions(t *testing.T) {
	require.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	require.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	require.False(t, StatusPending.CanTransitionTo(StatusCheckedIn))

	require.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedIn))
	require.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	require.False(t, StatusConfirmed.CanTransitionTo(StatusCheckedOut))

	require.True(t, StatusCheckedIn.CanTransitionTo(StatusCheckedOut))
	require.False(t, StatusCheckedIn.CanTransitionTo(StatusCancelled))

	require.False(t, StatusCheckedOut.CanTransitionTo(StatusPending))
	require.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
}

func TestCancellationSnapshot(t *testing.T) {
	arrival := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	r := Reservation{
		TotalCents:      18000,
		PaidCents:       4500,
		Arrival:         arrival,
		Nights:          3,
		FirstNightCents: 6500,
	}

	snap := r.CancellationSnapshot()
	require.Equal(t, int64(18000), snap.TotalCents)
	require.Equal(t, int64(4500), snap.PaidCents)
	require.Equal(t, arrival, snap.ArrivalDate)
	require.Equal(t, 3, snap.Nights)
	require.Equal(t, int64(6500), snap.FirstNightCents)
}
