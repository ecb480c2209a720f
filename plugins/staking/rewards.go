package staking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/common/utils"
)

// TierAPR is the annual percentage paid for a lockup tier. Unknown tiers earn the flex rate.
func TierAPR(lockupDays uint16) uint64 {
	switch lockupDays {
	case StandardLockupDays:
		return 12
	case PremiumLockupDays:
		return 20
	default:
		return 6
	}
}

// CalculateRewards returns the reward accrued by amount between last and now:
//
//	annual = floor(amount * apr / 100)
//	reward = floor(annual * elapsed / SecondsPerYear)
//
// Short intervals and small stakes truncate to zero.
func CalculateRewards(amount uint64, last, now int64, lockupDays uint16) (uint64, sdk.Error) {
	if now <= last {
		return 0, nil
	}
	// now > last, so the difference is positive; compute it without int64 wraparound.
	elapsed := uint64(now) - uint64(last)
	annual, err := utils.MulDiv(amount, TierAPR(lockupDays), 100)
	if err != nil {
		return 0, err
	}
	return utils.MulDiv(annual, elapsed, SecondsPerYear)
}

// Penalty returns the early-exit penalty withheld from amount.
func Penalty(amount uint64) (uint64, sdk.Error) {
	return utils.MulDiv(amount, EarlyUnstakePenaltyPercent, 100)
}
