package staking

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	FlexLockupDays     uint16 = 0
	StandardLockupDays uint16 = 30
	PremiumLockupDays  uint16 = 90

	// EarlyUnstakePenaltyPercent is withheld from withdrawals made before the lockup ends.
	EarlyUnstakePenaltyPercent uint64 = 2

	SecondsPerYear uint64 = 365 * 24 * 60 * 60
)

func IsValidLockupPeriod(days uint16) bool {
	return days == FlexLockupDays || days == StandardLockupDays || days == PremiumLockupDays
}

type StakingPool struct {
	Authority   sdk.AccAddress `json:"authority"`
	TokenMint   string         `json:"token_mint"`
	Vault       sdk.AccAddress `json:"vault"`
	RewardRate  uint64         `json:"reward_rate"`
	PoolNonce   uint8          `json:"pool_nonce"`
	TotalStaked uint64         `json:"total_staked"`
	Paused      bool           `json:"paused"`
}

func (pool StakingPool) String() string {
	return fmt.Sprintf("StakingPool{%s#vault=%s#total=%d#paused=%v}", pool.TokenMint, pool.Vault.String(), pool.TotalStaked, pool.Paused)
}

// UserStake is one owner's position in one pool.
type UserStake struct {
	Authority      sdk.AccAddress `json:"authority"`
	Amount         uint64         `json:"amount"`
	LastUpdateTime int64          `json:"last_update_time"`
	LockupEndTime  int64          `json:"lockup_end_time"`
	LockupDays     uint16         `json:"lockup_days"`
}

func (s UserStake) IsLocked(now int64) bool {
	return now < s.LockupEndTime
}
