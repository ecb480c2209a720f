package staking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/common/types"
)

const AbciQueryPrefix = "staking"

// PoolSummary is a pool as reported to clients, with its derived figures.
type PoolSummary struct {
	Pool            StakingPool `json:"pool"`
	RetainedPenalty uint64      `json:"retained_penalty"`
}

// createAbciQueryHandler serves
//
//	staking/pools
//	staking/pool/<mint>
//	staking/stakes/<mint>[/<offset>/<limit>]
//	staking/stake/<mint>/<owner>
//	staking/rewards/<mint>/<owner>
//	staking/layout/{pool,stake}/<mint>[/<owner>]
func createAbciQueryHandler(keeper Keeper) types.AbciQueryHandler {
	return func(app types.ChainApp, req abci.RequestQuery, path []string) (res *abci.ResponseQuery) {
		// expects at least two query path segments.
		if path[0] != AbciQueryPrefix || len(path) < 2 {
			return nil
		}
		ctx := app.GetContextForQuery()
		cdc := app.GetCodec()
		switch path[1] {
		case "pools":
			pools := keeper.GetAllPools(ctx)
			summaries := make([]PoolSummary, 0, len(pools))
			for _, pool := range pools {
				summaries = append(summaries, PoolSummary{pool, keeper.GetRetainedPenalty(ctx, pool.TokenMint)})
			}
			return types.QueryJSON(cdc, summaries)
		case "pool":
			if len(path) < 3 {
				return types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires a mint path arg", AbciQueryPrefix, path[1])
			}
			pool, found := keeper.GetPool(ctx, path[2])
			if !found {
				return errResponse(ErrPoolNotFound(path[2]))
			}
			return types.QueryJSON(cdc, PoolSummary{pool, keeper.GetRetainedPenalty(ctx, pool.TokenMint)})
		case "stakes":
			if len(path) < 3 {
				return types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires a mint path arg", AbciQueryPrefix, path[1])
			}
			offset, limit, err := types.ParsePagination(path[3:])
			if err != nil {
				return types.QueryErr(sdk.CodeUnknownRequest, err.Error())
			}
			return types.QueryJSON(cdc, keeper.GetUserStakes(ctx, path[2], offset, limit))
		case "stake":
			stake, errRes := queryStake(ctx, keeper, path)
			if errRes != nil {
				return errRes
			}
			return types.QueryJSON(cdc, stake)
		case "rewards":
			mint, owner, errRes := mintAndOwner(path)
			if errRes != nil {
				return errRes
			}
			reward, err := keeper.PendingRewards(ctx, mint, owner)
			if err != nil {
				return errResponse(err)
			}
			return types.QueryJSON(cdc, reward)
		case "layout":
			return queryLayout(ctx, keeper, path)
		default:
			return types.QueryErr(sdk.CodeUnknownRequest, "Unknown `%s` query path: %v", AbciQueryPrefix, path)
		}
	}
}

func queryLayout(ctx sdk.Context, keeper Keeper, path []string) *abci.ResponseQuery {
	if len(path) < 4 {
		return types.QueryErr(sdk.CodeUnknownRequest, "%s layout query requires a record kind and mint", AbciQueryPrefix)
	}
	switch path[2] {
	case "pool":
		pool, found := keeper.GetPool(ctx, path[3])
		if !found {
			return errResponse(ErrPoolNotFound(path[3]))
		}
		return types.QueryRaw(pool.MarshalLayout())
	case "stake":
		stake, errRes := queryStake(ctx, keeper, append([]string{AbciQueryPrefix}, path[2:]...))
		if errRes != nil {
			return errRes
		}
		return types.QueryRaw(stake.MarshalLayout())
	default:
		return types.QueryErr(sdk.CodeUnknownRequest, "unknown layout record %q", path[2])
	}
}

func queryStake(ctx sdk.Context, keeper Keeper, path []string) (UserStake, *abci.ResponseQuery) {
	mint, owner, errRes := mintAndOwner(path)
	if errRes != nil {
		return UserStake{}, errRes
	}
	stake, found := keeper.GetUserStake(ctx, mint, owner)
	if !found {
		return UserStake{}, errResponse(ErrStakeNotFound(mint, owner))
	}
	return stake, nil
}

func mintAndOwner(path []string) (string, sdk.AccAddress, *abci.ResponseQuery) {
	if len(path) < 4 {
		return "", nil, types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires mint and owner path args", AbciQueryPrefix, path[1])
	}
	owner, err := sdk.AccAddressFromBech32(path[3])
	if err != nil {
		return "", nil, types.QueryErr(sdk.CodeInvalidAddress, err.Error())
	}
	return path[2], owner, nil
}

func errResponse(err sdk.Error) *abci.ResponseQuery {
	return &abci.ResponseQuery{
		Code: uint32(err.Code()),
		Log:  err.Error(),
	}
}
