package staking

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TagAction    = "action"
	TagTokenMint = "staking.mint"
	TagOwner     = "staking.owner"
	TagAmount    = "staking.amount"
	TagPenalty   = "staking.penalty"
	TagReward    = "staking.reward"
	TagPaused    = "staking.paused"
)

func actionTags(action, mint string, owner sdk.AccAddress) sdk.Tags {
	return sdk.EmptyTags().
		AppendTag(TagAction, []byte(action)).
		AppendTag(TagTokenMint, []byte(mint)).
		AppendTag(TagOwner, []byte(owner.String()))
}

func uintTag(tags sdk.Tags, key string, v uint64) sdk.Tags {
	return tags.AppendTag(key, []byte(strconv.FormatUint(v, 10)))
}
