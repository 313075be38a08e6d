package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentOf(t *testing.T) {
	require.Equal(t, int64(3750), PercentOf(15000, 25))
	require.Equal(t, int64(0), PercentOf(0, 25))
	require.Equal(t, int64(0), PercentOf(15000, 0))

	// 12.625 rounds half-up to 13.
	require.Equal(t, int64(13), PercentOf(101, 12.5))
}

func TestApplyPercent(t *testing.T) {
	require.Equal(t, int64(16500), ApplyPercent(15000, 10))
	require.Equal(t, int64(8500), ApplyPercent(10000, -15))
	require.Equal(t, int64(15000), ApplyPercent(15000, 0))

	// 1060.5 rounds half-up to 1061.
	require.Equal(t, int64(1061), ApplyPercent(1010, 5))
}

func TestSplit(t *testing.T) {
	require.Equal(t, int64(5000), Split(15000, 3))

	// 10000/3 = 3333.33... rounds to 3333.
	require.Equal(t, int64(3333), Split(10000, 3))

	// 50/4 = 12.5 rounds half-up to 13.
	require.Equal(t, int64(13), Split(50, 4))
}

func TestClamp(t *testing.T) {
	require.Equal(t, int64(5), Clamp(5, 0, 10))
	require.Equal(t, int64(0), Clamp(-5, 0, 10))
	require.Equal(t, int64(10), Clamp(15, 0, 10))
}
