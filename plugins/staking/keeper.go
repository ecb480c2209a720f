package staking

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	ualog "github.com/uachain/node/common/log"
	"github.com/uachain/node/common/types"
	"github.com/uachain/node/common/utils"
)

// BankKeeper moves staked tokens in and out of pool vaults.
type BankKeeper interface {
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) (sdk.Tags, sdk.Error)
}

type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
	bk       BankKeeper
	logger   tmlog.Logger
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, bk BankKeeper) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
		bk:       bk,
		logger:   ualog.With("module", "staking"),
	}
}

func now(ctx sdk.Context) int64 {
	return ctx.BlockHeader().Time.Unix()
}

func coinsOf(mint string, amount uint64) (sdk.Coins, sdk.Error) {
	coinAmount, err := utils.ToCoinAmount(amount)
	if err != nil {
		return nil, err
	}
	return sdk.Coins{sdk.NewCoin(mint, coinAmount)}, nil
}

// ----------------------------------------------------------------------------
// records

func (k Keeper) GetPool(ctx sdk.Context, mint string) (StakingPool, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetPoolKey(mint))
	if bz == nil {
		return StakingPool{}, false
	}
	var pool StakingPool
	k.cdc.MustUnmarshalBinaryBare(bz, &pool)
	return pool, true
}

func (k Keeper) setPool(ctx sdk.Context, pool StakingPool) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetPoolKey(pool.TokenMint), k.cdc.MustMarshalBinaryBare(pool))
}

func (k Keeper) GetAllPools(ctx sdk.Context) []StakingPool {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, PoolKey)
	defer iter.Close()

	pools := make([]StakingPool, 0)
	for ; iter.Valid(); iter.Next() {
		var pool StakingPool
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &pool)
		pools = append(pools, pool)
	}
	return pools
}

func (k Keeper) GetUserStake(ctx sdk.Context, mint string, owner sdk.AccAddress) (UserStake, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetUserStakeKey(mint, owner))
	if bz == nil {
		return UserStake{}, false
	}
	var stake UserStake
	k.cdc.MustUnmarshalBinaryBare(bz, &stake)
	return stake, true
}

func (k Keeper) setUserStake(ctx sdk.Context, mint string, stake UserStake) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetUserStakeKey(mint, stake.Authority), k.cdc.MustMarshalBinaryBare(stake))
}

// GetUserStakes returns up to limit positions of the pool, skipping the first offset.
func (k Keeper) GetUserStakes(ctx sdk.Context, mint string, offset uint64, limit int) []UserStake {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, GetUserStakeQueueKey(mint))
	defer iter.Close()

	stakes := make([]UserStake, 0)
	for i := uint64(0); iter.Valid() && len(stakes) < limit; iter.Next() {
		if i < offset {
			i++
			continue
		}
		var stake UserStake
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &stake)
		stakes = append(stakes, stake)
	}
	return stakes
}

// SumStaked adds up every position of the pool. It should always equal the pool's TotalStaked.
func (k Keeper) SumStaked(ctx sdk.Context, mint string) (uint64, sdk.Error) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, GetUserStakeQueueKey(mint))
	defer iter.Close()

	var sum uint64
	for ; iter.Valid(); iter.Next() {
		var stake UserStake
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &stake)
		var err sdk.Error
		if sum, err = utils.SafeAdd(sum, stake.Amount); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// GetRetainedPenalty returns the early-exit penalties withheld in the vault of mint.
func (k Keeper) GetRetainedPenalty(ctx sdk.Context, mint string) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetRetainedPenaltyKey(mint))
	if bz == nil {
		return 0
	}
	var retained uint64
	k.cdc.MustUnmarshalBinaryBare(bz, &retained)
	return retained
}

func (k Keeper) setRetainedPenalty(ctx sdk.Context, mint string, retained uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetRetainedPenaltyKey(mint), k.cdc.MustMarshalBinaryBare(retained))
}

func (k Keeper) activePool(ctx sdk.Context, mint string) (StakingPool, sdk.Error) {
	pool, found := k.GetPool(ctx, mint)
	if !found {
		return StakingPool{}, ErrPoolNotFound(mint)
	}
	if pool.Paused {
		return StakingPool{}, ErrPoolPaused(mint)
	}
	return pool, nil
}

// ----------------------------------------------------------------------------
// operations

func (k Keeper) InitializePool(ctx sdk.Context, authority sdk.AccAddress, mint string, nonce uint8, rewardRate uint64) (StakingPool, sdk.Error) {
	if err := types.ValidateDenom(mint); err != nil {
		return StakingPool{}, ErrInvalidTokenMint(err.Error())
	}
	if _, found := k.GetPool(ctx, mint); found {
		return StakingPool{}, ErrPoolExists(mint)
	}
	pool := StakingPool{
		Authority:   authority,
		TokenMint:   mint,
		Vault:       DeriveVault(mint, nonce),
		RewardRate:  rewardRate,
		PoolNonce:   nonce,
		TotalStaked: 0,
		Paused:      false,
	}
	k.setPool(ctx, pool)
	k.logger.Info("staking pool initialized", "mint", mint, "vault", pool.Vault.String(), "rewardRate", rewardRate)
	return pool, nil
}

// SetPaused flips the gate on every mutating pool operation. Only the pool authority may call it.
func (k Keeper) SetPaused(ctx sdk.Context, authority sdk.AccAddress, mint string, paused bool) (StakingPool, sdk.Error) {
	pool, found := k.GetPool(ctx, mint)
	if !found {
		return StakingPool{}, ErrPoolNotFound(mint)
	}
	if !pool.Authority.Equals(authority) {
		return StakingPool{}, ErrUnauthorized("only the pool authority can pause or resume the pool")
	}
	pool.Paused = paused
	k.setPool(ctx, pool)
	k.logger.Info("staking pool pause flag set", "mint", mint, "paused", paused)
	return pool, nil
}

// Stake moves amount from owner into the vault and resets the position's lockup to lockupDays.
func (k Keeper) Stake(ctx sdk.Context, owner sdk.AccAddress, mint string, amount uint64, lockupDays uint16) (UserStake, sdk.Tags, sdk.Error) {
	pool, err := k.activePool(ctx, mint)
	if err != nil {
		return UserStake{}, nil, err
	}
	if amount == 0 {
		return UserStake{}, nil, ErrInvalidAmount("stake amount should be positive")
	}
	if !IsValidLockupPeriod(lockupDays) {
		return UserStake{}, nil, ErrInvalidLockupPeriod(lockupDays)
	}

	stake, found := k.GetUserStake(ctx, mint, owner)
	if !found {
		stake = UserStake{Authority: owner}
	}
	t := now(ctx)
	newAmount, err := utils.SafeAdd(stake.Amount, amount)
	if err != nil {
		return UserStake{}, nil, err
	}
	newTotal, err := utils.SafeAdd(pool.TotalStaked, amount)
	if err != nil {
		return UserStake{}, nil, err
	}
	lockupEnd, err := utils.AddDays(t, uint64(lockupDays))
	if err != nil {
		return UserStake{}, nil, err
	}
	coins, err := coinsOf(mint, amount)
	if err != nil {
		return UserStake{}, nil, err
	}
	tags, err := k.bk.SendCoins(ctx, owner, pool.Vault, coins)
	if err != nil {
		return UserStake{}, nil, err
	}

	stake.Amount = newAmount
	stake.LastUpdateTime = t
	stake.LockupEndTime = lockupEnd
	stake.LockupDays = lockupDays
	k.setUserStake(ctx, mint, stake)
	pool.TotalStaked = newTotal
	k.setPool(ctx, pool)

	k.logger.Debug("staked", "mint", mint, "owner", owner.String(), "amount", amount, "lockupDays", lockupDays)
	return stake, tags, nil
}

// Unstake pays amount out of the vault, less the early-exit penalty while the position is locked.
// The full amount leaves the position and the pool total.
func (k Keeper) Unstake(ctx sdk.Context, owner sdk.AccAddress, mint string, amount uint64) (UserStake, uint64, sdk.Tags, sdk.Error) {
	pool, err := k.activePool(ctx, mint)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	if amount == 0 {
		return UserStake{}, 0, nil, ErrInvalidAmount("unstake amount should be positive")
	}
	stake, _ := k.GetUserStake(ctx, mint, owner)
	if stake.Amount < amount {
		return UserStake{}, 0, nil, ErrInsufficientStake(stake.Amount, amount)
	}

	t := now(ctx)
	var penalty uint64
	if stake.IsLocked(t) {
		if penalty, err = Penalty(amount); err != nil {
			return UserStake{}, 0, nil, err
		}
	}
	payout, err := utils.SafeSub(amount, penalty)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	newAmount, err := utils.SafeSub(stake.Amount, amount)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	newTotal, err := utils.SafeSub(pool.TotalStaked, amount)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	retained, err := utils.SafeAdd(k.GetRetainedPenalty(ctx, mint), penalty)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	if !DeriveVault(mint, pool.PoolNonce).Equals(pool.Vault) {
		return UserStake{}, 0, nil, ErrInvalidPoolAuthority(mint)
	}
	coins, err := coinsOf(mint, payout)
	if err != nil {
		return UserStake{}, 0, nil, err
	}
	tags, err := k.bk.SendCoins(ctx, pool.Vault, owner, coins)
	if err != nil {
		return UserStake{}, 0, nil, err
	}

	stake.Amount = newAmount
	stake.LastUpdateTime = t
	k.setUserStake(ctx, mint, stake)
	pool.TotalStaked = newTotal
	k.setPool(ctx, pool)
	if penalty > 0 {
		k.setRetainedPenalty(ctx, mint, retained)
	}

	k.logger.Debug("unstaked", "mint", mint, "owner", owner.String(), "amount", amount, "penalty", penalty)
	return stake, penalty, tags, nil
}

// PendingRewards is the reward ClaimRewards would pay owner at the context's block time.
func (k Keeper) PendingRewards(ctx sdk.Context, mint string, owner sdk.AccAddress) (uint64, sdk.Error) {
	stake, found := k.GetUserStake(ctx, mint, owner)
	if !found {
		return 0, ErrStakeNotFound(mint, owner)
	}
	return CalculateRewards(stake.Amount, stake.LastUpdateTime, now(ctx), stake.LockupDays)
}

// ClaimRewards pays the accrued reward out of the vault. Nothing accrued is a successful no-op
// that leaves the settlement time untouched.
func (k Keeper) ClaimRewards(ctx sdk.Context, owner sdk.AccAddress, mint string) (uint64, sdk.Tags, sdk.Error) {
	pool, err := k.activePool(ctx, mint)
	if err != nil {
		return 0, nil, err
	}
	stake, found := k.GetUserStake(ctx, mint, owner)
	if !found {
		return 0, nil, ErrStakeNotFound(mint, owner)
	}
	t := now(ctx)
	reward, err := CalculateRewards(stake.Amount, stake.LastUpdateTime, t, stake.LockupDays)
	if err != nil {
		return 0, nil, err
	}
	if reward == 0 {
		return 0, sdk.EmptyTags(), nil
	}
	if !DeriveVault(mint, pool.PoolNonce).Equals(pool.Vault) {
		return 0, nil, ErrInvalidPoolAuthority(mint)
	}
	coins, err := coinsOf(mint, reward)
	if err != nil {
		return 0, nil, err
	}
	tags, err := k.bk.SendCoins(ctx, pool.Vault, owner, coins)
	if err != nil {
		return 0, nil, err
	}

	stake.LastUpdateTime = t
	k.setUserStake(ctx, mint, stake)
	k.logger.Debug("rewards claimed", "mint", mint, "owner", owner.String(), "reward", reward)
	return reward, tags, nil
}
