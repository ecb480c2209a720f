package account

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/uachain/node/common"
	"github.com/uachain/node/common/testutils"
	"github.com/uachain/node/wire"
)

func setup() (sdk.Context, Keeper) {
	ms := testutils.SetupMultiStoreForUnitTest()
	ctx := testutils.NewContext(ms, 1, 1_700_000_000)
	return ctx, NewKeeper(wire.NewCodec(), common.AccountStoreKey)
}

func TestKeeper_AddAndGetCoins(t *testing.T) {
	ctx, keeper := setup()
	addr := testutils.NewAddrs(1)[0]

	require.Empty(t, keeper.GetCoins(ctx, addr))

	_, _, err := keeper.AddCoins(ctx, addr, sdk.Coins{sdk.NewCoin("UA", 500)})
	require.Nil(t, err)
	_, _, err = keeper.AddCoins(ctx, addr, sdk.Coins{sdk.NewCoin("USDC", 7)})
	require.Nil(t, err)

	coins := keeper.GetCoins(ctx, addr)
	require.Len(t, coins, 2)
	require.Equal(t, "UA", coins[0].Denom)
	require.Equal(t, int64(500), coins.AmountOf("UA"))
	require.Equal(t, int64(7), keeper.GetBalance(ctx, addr, "USDC"))
	require.True(t, keeper.HasCoins(ctx, addr, sdk.Coins{sdk.NewCoin("UA", 500)}))
	require.False(t, keeper.HasCoins(ctx, addr, sdk.Coins{sdk.NewCoin("UA", 501)}))
}

func TestKeeper_SendCoins(t *testing.T) {
	ctx, keeper := setup()
	addrs := testutils.NewAddrs(2)

	_, _, err := keeper.AddCoins(ctx, addrs[0], sdk.Coins{sdk.NewCoin("UA", 100)})
	require.Nil(t, err)

	_, err = keeper.SendCoins(ctx, addrs[0], addrs[1], sdk.Coins{sdk.NewCoin("UA", 98)})
	require.Nil(t, err)
	require.Equal(t, int64(2), keeper.GetBalance(ctx, addrs[0], "UA"))
	require.Equal(t, int64(98), keeper.GetBalance(ctx, addrs[1], "UA"))

	_, err = keeper.SendCoins(ctx, addrs[0], addrs[1], sdk.Coins{sdk.NewCoin("UA", 3)})
	require.NotNil(t, err)
	require.Equal(t, sdk.CodeInsufficientCoins, err.Code())
	require.Equal(t, int64(2), keeper.GetBalance(ctx, addrs[0], "UA"))
	require.Equal(t, int64(98), keeper.GetBalance(ctx, addrs[1], "UA"))
}

func TestKeeper_SubtractToZeroRemovesBalance(t *testing.T) {
	ctx, keeper := setup()
	addr := testutils.NewAddrs(1)[0]

	_, _, err := keeper.AddCoins(ctx, addr, sdk.Coins{sdk.NewCoin("UA", 10)})
	require.Nil(t, err)
	_, _, err = keeper.SubtractCoins(ctx, addr, sdk.Coins{sdk.NewCoin("UA", 10)})
	require.Nil(t, err)
	require.Empty(t, keeper.GetCoins(ctx, addr))
	require.Nil(t, ctx.KVStore(common.AccountStoreKey).Get(GetBalanceKey(addr, "UA")))
}
