package staking

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/uachain/node/common"
	"github.com/uachain/node/common/account"
	"github.com/uachain/node/common/testutils"
	"github.com/uachain/node/wire"
)

const (
	testMint  = "UA"
	startTime = int64(1_700_000_000)
	day       = int64(86400)
	year      = int64(365 * 86400)
)

func setup() (sdk.Context, Keeper, account.Keeper) {
	ms := testutils.SetupMultiStoreForUnitTest()
	ctx := testutils.NewContext(ms, 1, startTime)
	cdc := wire.NewCodec()
	accKeeper := account.NewKeeper(cdc, common.AccountStoreKey)
	return ctx, NewKeeper(cdc, common.StakingStoreKey, accKeeper), accKeeper
}

func fund(t *testing.T, ctx sdk.Context, accKeeper account.Keeper, addr sdk.AccAddress, amount int64) {
	_, _, err := accKeeper.AddCoins(ctx, addr, sdk.Coins{sdk.NewCoin(testMint, amount)})
	require.Nil(t, err)
}

func initPool(t *testing.T, ctx sdk.Context, keeper Keeper) (StakingPool, sdk.AccAddress) {
	authority := testutils.NewAddrs(1)[0]
	pool, err := keeper.InitializePool(ctx, authority, testMint, 255, 500)
	require.Nil(t, err)
	return pool, authority
}

func requireConserved(t *testing.T, ctx sdk.Context, keeper Keeper) {
	pool, found := keeper.GetPool(ctx, testMint)
	require.True(t, found)
	sum, err := keeper.SumStaked(ctx, testMint)
	require.Nil(t, err)
	require.Equal(t, pool.TotalStaked, sum)
}

func TestKeeper_InitializePool(t *testing.T) {
	ctx, keeper, _ := setup()
	pool, authority := initPool(t, ctx, keeper)
	require.Equal(t, DeriveVault(testMint, 255), pool.Vault)
	require.NotEqual(t, DeriveVault(testMint, 254), pool.Vault)
	require.Zero(t, pool.TotalStaked)
	require.False(t, pool.Paused)
	require.Equal(t, uint64(500), pool.RewardRate)

	_, err := keeper.InitializePool(ctx, authority, testMint, 1, 0)
	require.NotNil(t, err)
	require.Equal(t, CodePoolExists, err.Code())
}

func TestKeeper_StakeValidation(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 1000)

	_, _, err := keeper.Stake(ctx, owner, testMint, 10, 0)
	require.Equal(t, CodePoolNotFound, err.Code())

	initPool(t, ctx, keeper)
	_, _, err = keeper.Stake(ctx, owner, testMint, 0, 0)
	require.Equal(t, CodeInvalidAmount, err.Code())
	_, _, err = keeper.Stake(ctx, owner, testMint, 10, 45)
	require.Equal(t, CodeInvalidLockupPeriod, err.Code())
	_, _, err = keeper.Stake(ctx, owner, testMint, 1001, 0)
	require.Equal(t, sdk.CodeInsufficientCoins, err.Code())

	_, found := keeper.GetUserStake(ctx, testMint, owner)
	require.False(t, found)
	requireConserved(t, ctx, keeper)
}

func TestKeeper_StakeAndTopUp(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	pool, _ := initPool(t, ctx, keeper)
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 1000)

	stake, _, err := keeper.Stake(ctx, owner, testMint, 400, 90)
	require.Nil(t, err)
	require.Equal(t, uint64(400), stake.Amount)
	require.Equal(t, startTime, stake.LastUpdateTime)
	require.Equal(t, startTime+90*day, stake.LockupEndTime)
	require.Equal(t, uint16(90), stake.LockupDays)
	require.Equal(t, int64(600), accKeeper.GetBalance(ctx, owner, testMint))
	require.Equal(t, int64(400), accKeeper.GetBalance(ctx, pool.Vault, testMint))

	// a top-up resets the lockup to the new tier
	ctx = testutils.AtTime(ctx, startTime+100*day)
	stake, _, err = keeper.Stake(ctx, owner, testMint, 100, 30)
	require.Nil(t, err)
	require.Equal(t, uint64(500), stake.Amount)
	require.Equal(t, startTime+130*day, stake.LockupEndTime)
	require.Equal(t, uint16(30), stake.LockupDays)

	pool, _ = keeper.GetPool(ctx, testMint)
	require.Equal(t, uint64(500), pool.TotalStaked)
	requireConserved(t, ctx, keeper)
}

func TestKeeper_UnstakeEarlyPenalty(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	pool, _ := initPool(t, ctx, keeper)
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 100)

	_, _, err := keeper.Stake(ctx, owner, testMint, 100, 30)
	require.Nil(t, err)

	ctx = testutils.AtTime(ctx, startTime+29*day)
	stake, penalty, _, err := keeper.Unstake(ctx, owner, testMint, 100)
	require.Nil(t, err)
	require.Equal(t, uint64(2), penalty)
	require.Equal(t, uint64(0), stake.Amount)
	require.Equal(t, startTime+29*day, stake.LastUpdateTime)
	require.Equal(t, int64(98), accKeeper.GetBalance(ctx, owner, testMint))
	require.Equal(t, int64(2), accKeeper.GetBalance(ctx, pool.Vault, testMint))
	require.Equal(t, uint64(2), keeper.GetRetainedPenalty(ctx, testMint))

	pool, _ = keeper.GetPool(ctx, testMint)
	require.Zero(t, pool.TotalStaked)

	// the emptied position stays on record
	stake, found := keeper.GetUserStake(ctx, testMint, owner)
	require.True(t, found)
	require.Zero(t, stake.Amount)
	requireConserved(t, ctx, keeper)
}

func TestKeeper_UnstakeAfterLockup(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	initPool(t, ctx, keeper)
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 100)
	_, _, err := keeper.Stake(ctx, owner, testMint, 100, 30)
	require.Nil(t, err)

	// lockup end itself is no longer locked
	ctx = testutils.AtTime(ctx, startTime+30*day)
	_, penalty, _, err := keeper.Unstake(ctx, owner, testMint, 60)
	require.Nil(t, err)
	require.Zero(t, penalty)
	require.Equal(t, int64(60), accKeeper.GetBalance(ctx, owner, testMint))
	require.Zero(t, keeper.GetRetainedPenalty(ctx, testMint))

	_, _, _, err = keeper.Unstake(ctx, owner, testMint, 41)
	require.NotNil(t, err)
	require.Equal(t, CodeInsufficientStake, err.Code())

	_, _, _, err = keeper.Unstake(ctx, testutils.NewAddrs(1)[0], testMint, 1)
	require.Equal(t, CodeInsufficientStake, err.Code())

	_, _, _, err = keeper.Unstake(ctx, owner, testMint, 0)
	require.Equal(t, CodeInvalidAmount, err.Code())
	requireConserved(t, ctx, keeper)
}

func TestKeeper_TotalStakedConserved(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	initPool(t, ctx, keeper)
	owners := testutils.NewAddrs(4)
	for _, owner := range owners {
		fund(t, ctx, accKeeper, owner, 10_000)
	}

	steps := []struct {
		owner   int
		stake   bool
		amount  uint64
		lockup  uint16
		advance int64
	}{
		{0, true, 1000, 0, 0},
		{1, true, 2500, 30, day},
		{0, false, 300, 0, day},
		{2, true, 7000, 90, 0},
		{1, false, 2500, 0, 40 * day},
		{3, true, 1, 0, 0},
		{2, false, 6999, 0, 0},
		{0, true, 50, 90, 0},
		{3, false, 1, 0, 0},
	}
	for i, step := range steps {
		ctx = testutils.AtTime(ctx, ctx.BlockHeader().Time.Unix()+step.advance)
		var err sdk.Error
		if step.stake {
			_, _, err = keeper.Stake(ctx, owners[step.owner], testMint, step.amount, step.lockup)
		} else {
			_, _, _, err = keeper.Unstake(ctx, owners[step.owner], testMint, step.amount)
		}
		require.Nil(t, err, "step: %v", i)
		requireConserved(t, ctx, keeper)
	}

	pool, _ := keeper.GetPool(ctx, testMint)
	require.Equal(t, uint64(1000-300+7000-6999+50), pool.TotalStaked)
	require.Len(t, keeper.GetUserStakes(ctx, testMint, 0, 100), 4)
	require.Len(t, keeper.GetUserStakes(ctx, testMint, 3, 100), 1)
}

func TestKeeper_ClaimRewards(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	pool, _ := initPool(t, ctx, keeper)
	owners := testutils.NewAddrs(2)
	owner := owners[0]
	fund(t, ctx, accKeeper, owner, 1_000_000)
	// a second staker funds the vault enough to pay rewards
	fund(t, ctx, accKeeper, owners[1], 500_000)

	_, _, err := keeper.ClaimRewards(ctx, owner, testMint)
	require.Equal(t, CodeStakeNotFound, err.Code())

	_, _, err = keeper.Stake(ctx, owner, testMint, 1_000_000, 30)
	require.Nil(t, err)
	_, _, err = keeper.Stake(ctx, owners[1], testMint, 500_000, 0)
	require.Nil(t, err)

	// nothing accrued yet: success without a transfer or a time reset
	reward, _, err := keeper.ClaimRewards(ctx, owner, testMint)
	require.Nil(t, err)
	require.Zero(t, reward)

	ctx = testutils.AtTime(ctx, startTime+year)
	pending, err := keeper.PendingRewards(ctx, testMint, owner)
	require.Nil(t, err)
	require.Equal(t, uint64(120_000), pending)

	reward, _, err = keeper.ClaimRewards(ctx, owner, testMint)
	require.Nil(t, err)
	require.Equal(t, uint64(120_000), reward)
	require.Equal(t, int64(120_000), accKeeper.GetBalance(ctx, owner, testMint))
	require.Equal(t, int64(1_500_000-120_000), accKeeper.GetBalance(ctx, pool.Vault, testMint))

	stake, _ := keeper.GetUserStake(ctx, testMint, owner)
	require.Equal(t, startTime+year, stake.LastUpdateTime)
	require.Equal(t, uint64(1_000_000), stake.Amount)

	// a second claim in the same block pays nothing
	reward, _, err = keeper.ClaimRewards(ctx, owner, testMint)
	require.Nil(t, err)
	require.Zero(t, reward)
	requireConserved(t, ctx, keeper)
}

func TestKeeper_ClaimRewardsTruncatesToZero(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	initPool(t, ctx, keeper)
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 10)
	_, _, err := keeper.Stake(ctx, owner, testMint, 10, 0)
	require.Nil(t, err)

	ctx = testutils.AtTime(ctx, startTime+day)
	reward, _, err := keeper.ClaimRewards(ctx, owner, testMint)
	require.Nil(t, err)
	require.Zero(t, reward)

	stake, _ := keeper.GetUserStake(ctx, testMint, owner)
	require.Equal(t, startTime, stake.LastUpdateTime)
}

func TestKeeper_Paused(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	_, authority := initPool(t, ctx, keeper)
	owner := testutils.NewAddrs(1)[0]
	fund(t, ctx, accKeeper, owner, 100)
	_, _, err := keeper.Stake(ctx, owner, testMint, 50, 0)
	require.Nil(t, err)

	_, err = keeper.SetPaused(ctx, owner, testMint, true)
	require.NotNil(t, err)
	require.Equal(t, CodeUnauthorized, err.Code())

	pool, err := keeper.SetPaused(ctx, authority, testMint, true)
	require.Nil(t, err)
	require.True(t, pool.Paused)

	_, _, err = keeper.Stake(ctx, owner, testMint, 10, 0)
	require.Equal(t, CodePoolPaused, err.Code())
	_, _, _, err = keeper.Unstake(ctx, owner, testMint, 10)
	require.Equal(t, CodePoolPaused, err.Code())
	_, _, err = keeper.ClaimRewards(ctx, owner, testMint)
	require.Equal(t, CodePoolPaused, err.Code())

	_, err = keeper.SetPaused(ctx, authority, testMint, false)
	require.Nil(t, err)
	_, _, _, err = keeper.Unstake(ctx, owner, testMint, 10)
	require.Nil(t, err)
}
