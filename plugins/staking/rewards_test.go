package staking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uachain/node/common/utils"
)

func TestTierAPR(t *testing.T) {
	require.Equal(t, uint64(6), TierAPR(0))
	require.Equal(t, uint64(12), TierAPR(30))
	require.Equal(t, uint64(20), TierAPR(90))
	require.Equal(t, uint64(6), TierAPR(45))
}

func TestCalculateRewards(t *testing.T) {
	tests := []struct {
		amount     uint64
		last, now  int64
		lockupDays uint16
		expected   uint64
	}{
		{1_000_000, 0, 31_536_000, 30, 120_000},
		{1_000_000, 0, 31_536_000, 90, 200_000},
		{1_000_000, 0, 31_536_000, 0, 60_000},
		{1_000_000, 0, 31_536_000, 7, 60_000},
		{1_000_000, 0, 15_768_000, 30, 60_000},
		{1_000_000, 0, 2 * 31_536_000, 90, 400_000},
		// small stakes and short intervals truncate to zero
		{16, 0, 31_536_000, 0, 0},
		{1_000_000, 100, 101, 0, 0},
		{1_000_000, 100, 100, 90, 0},
		{1_000_000, 200, 100, 90, 0},
		{0, 0, 31_536_000, 90, 0},
	}
	for i, tc := range tests {
		reward, err := CalculateRewards(tc.amount, tc.last, tc.now, tc.lockupDays)
		require.Nil(t, err, "test: %v", i)
		require.Equal(t, tc.expected, reward, "test: %v", i)
	}
}

func TestCalculateRewardsOverflow(t *testing.T) {
	_, err := CalculateRewards(math.MaxUint64, 0, 1, 90)
	require.NotNil(t, err)
	require.Equal(t, utils.CodeArithmeticOverflow, err.Code())

	_, err = CalculateRewards(math.MaxUint64/20, 0, math.MaxInt64, 90)
	require.NotNil(t, err)
	require.Equal(t, utils.CodeArithmeticOverflow, err.Code())
}

func TestPenalty(t *testing.T) {
	p, err := Penalty(100)
	require.Nil(t, err)
	require.Equal(t, uint64(2), p)

	p, err = Penalty(49)
	require.Nil(t, err)
	require.Equal(t, uint64(0), p)
}
