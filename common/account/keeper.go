package account

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	ualog "github.com/uachain/node/common/log"
	"github.com/uachain/node/common/utils"
)

// Keeper manages token balances and transfers between accounts.
// Every balance is stored separately under (address, denom).
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
	logger   tmlog.Logger
}

// NewKeeper returns a new Keeper
func NewKeeper(cdc *codec.Codec, key sdk.StoreKey) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
		logger:   ualog.With("module", "account"),
	}
}

// GetCoins returns the coins at the addr.
func (keeper Keeper) GetCoins(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins {
	store := ctx.KVStore(keeper.storeKey)
	prefix := GetBalanceQueueKey(addr)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	coins := sdk.Coins{}
	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(prefix):])
		var amount int64
		keeper.cdc.MustUnmarshalBinaryBare(iterator.Value(), &amount)
		if amount > 0 {
			coins = append(coins, sdk.NewCoin(denom, amount))
		}
	}
	return coins
}

// GetBalance returns the amount of denom held by addr.
func (keeper Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) int64 {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(GetBalanceKey(addr, denom))
	if bz == nil {
		return 0
	}
	var amount int64
	keeper.cdc.MustUnmarshalBinaryBare(bz, &amount)
	return amount
}

func (keeper Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, denom string, amount int64) {
	store := ctx.KVStore(keeper.storeKey)
	key := GetBalanceKey(addr, denom)
	if amount == 0 {
		store.Delete(key)
		return
	}
	store.Set(key, keeper.cdc.MustMarshalBinaryBare(amount))
}

// HasCoins returns whether or not an account has at least amt coins.
func (keeper Keeper) HasCoins(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins) bool {
	for _, coin := range amt {
		if keeper.GetBalance(ctx, addr, coin.Denom) < coin.Amount {
			return false
		}
	}
	return true
}

// AddCoins adds amt to the coins at the addr.
func (keeper Keeper) AddCoins(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins) (sdk.Coins, sdk.Tags, sdk.Error) {
	balances, err := keeper.plan(ctx, addr, amt, true)
	if err != nil {
		return amt, nil, err
	}
	keeper.apply(ctx, addr, balances)
	tags := sdk.NewTags("recipient", []byte(addr.String()))
	return keeper.GetCoins(ctx, addr), tags, nil
}

// SubtractCoins subtracts amt from the coins at the addr.
func (keeper Keeper) SubtractCoins(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins) (sdk.Coins, sdk.Tags, sdk.Error) {
	balances, err := keeper.plan(ctx, addr, amt, false)
	if err != nil {
		return amt, nil, err
	}
	keeper.apply(ctx, addr, balances)
	tags := sdk.NewTags("sender", []byte(addr.String()))
	return keeper.GetCoins(ctx, addr), tags, nil
}

// SendCoins moves coins from one account to another. Either both sides are
// updated or, on error, neither is.
func (keeper Keeper) SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) (sdk.Tags, sdk.Error) {
	debits, err := keeper.plan(ctx, fromAddr, amt, false)
	if err != nil {
		return nil, err
	}
	original := make(map[string]int64, len(debits))
	for denom := range debits {
		original[denom] = keeper.GetBalance(ctx, fromAddr, denom)
	}
	keeper.apply(ctx, fromAddr, debits)

	credits, err := keeper.plan(ctx, toAddr, amt, true)
	if err != nil {
		// undo the debit so a failed transfer leaves no partial effect
		keeper.apply(ctx, fromAddr, original)
		return nil, err
	}
	keeper.apply(ctx, toAddr, credits)

	keeper.logger.Debug("sent coins", "from", fromAddr, "to", toAddr, "amount", amt)
	tags := sdk.NewTags("sender", []byte(fromAddr.String()), "recipient", []byte(toAddr.String()))
	return tags, nil
}

// plan computes the balances that result from applying amt without writing them.
func (keeper Keeper) plan(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins, credit bool) (map[string]int64, sdk.Error) {
	balances := make(map[string]int64, len(amt))
	for _, coin := range amt {
		if coin.Amount < 0 {
			return nil, sdk.ErrInvalidCoins(fmt.Sprintf("negative amount %d%s", coin.Amount, coin.Denom))
		}
		current, ok := balances[coin.Denom]
		if !ok {
			current = keeper.GetBalance(ctx, addr, coin.Denom)
		}
		if credit {
			next, err := utils.SafeAdd(utils.FromCoinAmount(current), uint64(coin.Amount))
			if err != nil {
				return nil, err
			}
			amount, err := utils.ToCoinAmount(next)
			if err != nil {
				return nil, err
			}
			balances[coin.Denom] = amount
		} else {
			if current < coin.Amount {
				return nil, sdk.ErrInsufficientCoins(fmt.Sprintf("%d%s < %d%s", current, coin.Denom, coin.Amount, coin.Denom))
			}
			balances[coin.Denom] = current - coin.Amount
		}
	}
	return balances, nil
}

func (keeper Keeper) apply(ctx sdk.Context, addr sdk.AccAddress, balances map[string]int64) {
	for denom, amount := range balances {
		keeper.setBalance(ctx, addr, denom, amount)
	}
}
