package staking

import (
	"github.com/uachain/node/common/types"
)

const (
	PoolLayoutSize      = types.IdentitySlotSize + types.MintSlotSize + types.IdentitySlotSize + 8 + 1 + 8 + 1
	UserStakeLayoutSize = types.IdentitySlotSize + 8 + 8 + 8 + 2
)

func (pool StakingPool) MarshalLayout() []byte {
	return types.NewLayoutWriter(PoolLayoutSize).
		PutIdentity(pool.Authority).
		PutMint(pool.TokenMint).
		PutIdentity(pool.Vault).
		PutUint64(pool.RewardRate).
		PutUint8(pool.PoolNonce).
		PutUint64(pool.TotalStaked).
		PutBool(pool.Paused).
		Bytes()
}

func (s UserStake) MarshalLayout() []byte {
	return types.NewLayoutWriter(UserStakeLayoutSize).
		PutIdentity(s.Authority).
		PutUint64(s.Amount).
		PutInt64(s.LastUpdateTime).
		PutInt64(s.LockupEndTime).
		PutUint16(s.LockupDays).
		Bytes()
}
