package utils

import (
	"fmt"
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const SecondsPerDay int64 = 86400

// AddDays returns the unix timestamp days after t, failing instead of wrapping.
func AddDays(t int64, days uint64) (int64, sdk.Error) {
	if t < 0 {
		return 0, ErrArithmeticUnderflow(fmt.Sprintf("negative timestamp %d", t))
	}
	seconds, err := SafeMul(days, uint64(SecondsPerDay))
	if err != nil {
		return 0, err
	}
	sum, err := SafeAdd(uint64(t), seconds)
	if err != nil {
		return 0, err
	}
	if sum > math.MaxInt64 {
		return 0, ErrArithmeticOverflow(fmt.Sprintf("timestamp %d + %d days", t, days))
	}
	return int64(sum), nil
}
