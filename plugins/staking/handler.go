package staking

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case InitPoolMsg:
			return handleInitPool(ctx, keeper, msg)
		case StakeMsg:
			return handleStake(ctx, keeper, msg)
		case UnstakeMsg:
			return handleUnstake(ctx, keeper, msg)
		case ClaimRewardsMsg:
			return handleClaimRewards(ctx, keeper, msg)
		case SetPausedMsg:
			return handleSetPaused(ctx, keeper, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized staking message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleInitPool(ctx sdk.Context, keeper Keeper, msg InitPoolMsg) sdk.Result {
	pool, err := keeper.InitializePool(ctx, msg.Authority, msg.TokenMint, msg.PoolNonce, msg.RewardRate)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Data: pool.Vault,
		Tags: actionTags(InitPoolMsgType, pool.TokenMint, msg.Authority),
	}
}

func handleStake(ctx sdk.Context, keeper Keeper, msg StakeMsg) sdk.Result {
	_, transferTags, err := keeper.Stake(ctx, msg.Owner, msg.TokenMint, msg.Amount, msg.LockupDays)
	if err != nil {
		return err.Result()
	}
	tags := uintTag(actionTags(StakeMsgType, msg.TokenMint, msg.Owner), TagAmount, msg.Amount)
	return sdk.Result{Tags: tags.AppendTags(transferTags)}
}

func handleUnstake(ctx sdk.Context, keeper Keeper, msg UnstakeMsg) sdk.Result {
	_, penalty, transferTags, err := keeper.Unstake(ctx, msg.Owner, msg.TokenMint, msg.Amount)
	if err != nil {
		return err.Result()
	}
	tags := uintTag(actionTags(UnstakeMsgType, msg.TokenMint, msg.Owner), TagAmount, msg.Amount)
	tags = uintTag(tags, TagPenalty, penalty)
	return sdk.Result{Tags: tags.AppendTags(transferTags)}
}

func handleClaimRewards(ctx sdk.Context, keeper Keeper, msg ClaimRewardsMsg) sdk.Result {
	reward, transferTags, err := keeper.ClaimRewards(ctx, msg.Owner, msg.TokenMint)
	if err != nil {
		return err.Result()
	}
	tags := uintTag(actionTags(ClaimRewardsMsgType, msg.TokenMint, msg.Owner), TagReward, reward)
	return sdk.Result{Tags: tags.AppendTags(transferTags)}
}

func handleSetPaused(ctx sdk.Context, keeper Keeper, msg SetPausedMsg) sdk.Result {
	pool, err := keeper.SetPaused(ctx, msg.Authority, msg.TokenMint, msg.Paused)
	if err != nil {
		return err.Result()
	}
	tags := actionTags(SetPausedMsgType, pool.TokenMint, msg.Authority).
		AppendTag(TagPaused, []byte(strconv.FormatBool(pool.Paused)))
	return sdk.Result{Tags: tags}
}
