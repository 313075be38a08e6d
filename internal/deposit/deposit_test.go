package deposit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func centsPtr(v int64) *int64     { return &v }

func TestCalculateNone(t *testing.T) {
	got, err := Calculate(15000, Config{Rule: RuleNone})
	require.NoError(t, err)
	require.Equal(t, int64(0), got)

	got, err = Calculate(15000, Config{})
	require.NoError(t, err)
	require.Equal(t, int64(0), got)
}

func TestCalculatePercent(t *testing.T) {
	// Three $50 nights with a 25% deposit.
	got, err := Calculate(15000, Config{Rule: RulePercent, Percentage: floatPtr(25)})
	require.NoError(t, err)
	require.Equal(t, int64(3750), got)
}

func TestCalculatePercentRoundsHalfUp(t *testing.T) {
	// 12.5% of 101 cents = 12.625 rounds to 13.
	got, err := Calculate(101, Config{Rule: RulePercent, Percentage: floatPtr(12.5)})
	require.NoError(t, err)
	require.Equal(t, int64(13), got)
}

func TestCalculatePercentClampedToTotal(t *testing.T) {
	got, err := Calculate(10000, Config{Rule: RulePercent, Percentage: floatPtr(150)})
	require.NoError(t, err)
	require.Equal(t, int64(10000), got)
}

func TestCalculateFlat(t *testing.T) {
	got, err := Calculate(15000, Config{Rule: RuleFlat, FlatCents: centsPtr(5000)})
	require.NoError(t, err)
	require.Equal(t, int64(5000), got)
}

func TestCalculateFlatClampedToTotal(t *testing.T) {
	got, err := Calculate(3000, Config{Rule: RuleFlat, FlatCents: centsPtr(5000)})
	require.NoError(t, err)
	require.Equal(t, int64(3000), got)
}

func TestCalculateMissingValue(t *testing.T) {
	_, err := Calculate(15000, Config{Rule: RulePercent})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Calculate(15000, Config{Rule: RuleFlat})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCalculateUnknownRule(t *testing.T) {
	_, err := Calculate(15000, Config{Rule: Rule("half")})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
