package staking

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/common/types"
)

const (
	MsgRoute = "staking"

	InitPoolMsgType     = "stakeInitPool"
	StakeMsgType        = "stake"
	UnstakeMsgType      = "unstake"
	ClaimRewardsMsgType = "stakeClaim"
	SetPausedMsgType    = "stakeSetPaused"
)

func mustMarshalSignBytes(msg interface{}) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func validateBasic(addr sdk.AccAddress, mint string) sdk.Error {
	if len(addr) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(addr.String())
	}
	if err := types.ValidateDenom(mint); err != nil {
		return ErrInvalidTokenMint(err.Error())
	}
	return nil
}

var _ sdk.Msg = InitPoolMsg{}

type InitPoolMsg struct {
	Authority  sdk.AccAddress `json:"authority"`
	TokenMint  string         `json:"token_mint"`
	PoolNonce  uint8          `json:"pool_nonce"`
	RewardRate uint64         `json:"reward_rate"`
}

func NewInitPoolMsg(authority sdk.AccAddress, mint string, nonce uint8, rewardRate uint64) InitPoolMsg {
	return InitPoolMsg{Authority: authority, TokenMint: mint, PoolNonce: nonce, RewardRate: rewardRate}
}

func (msg InitPoolMsg) Route() string { return MsgRoute }
func (msg InitPoolMsg) Type() string  { return InitPoolMsgType }
func (msg InitPoolMsg) String() string {
	return fmt.Sprintf("InitPool{%v#%v#%v#%v}", msg.Authority, msg.TokenMint, msg.PoolNonce, msg.RewardRate)
}
func (msg InitPoolMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg InitPoolMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Authority} }
func (msg InitPoolMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }
func (msg InitPoolMsg) ValidateBasic() sdk.Error               { return validateBasic(msg.Authority, msg.TokenMint) }

var _ sdk.Msg = StakeMsg{}

type StakeMsg struct {
	Owner      sdk.AccAddress `json:"owner"`
	TokenMint  string         `json:"token_mint"`
	Amount     uint64         `json:"amount"`
	LockupDays uint16         `json:"lockup_days"`
}

func NewStakeMsg(owner sdk.AccAddress, mint string, amount uint64, lockupDays uint16) StakeMsg {
	return StakeMsg{Owner: owner, TokenMint: mint, Amount: amount, LockupDays: lockupDays}
}

func (msg StakeMsg) Route() string { return MsgRoute }
func (msg StakeMsg) Type() string  { return StakeMsgType }
func (msg StakeMsg) String() string {
	return fmt.Sprintf("Stake{%v#%v#%v#%v}", msg.Owner, msg.TokenMint, msg.Amount, msg.LockupDays)
}
func (msg StakeMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg StakeMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Owner} }
func (msg StakeMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

// ValidateBasic leaves amount and lockup checks to the keeper, which reports a paused pool first.
func (msg StakeMsg) ValidateBasic() sdk.Error { return validateBasic(msg.Owner, msg.TokenMint) }

var _ sdk.Msg = UnstakeMsg{}

type UnstakeMsg struct {
	Owner     sdk.AccAddress `json:"owner"`
	TokenMint string         `json:"token_mint"`
	Amount    uint64         `json:"amount"`
}

func NewUnstakeMsg(owner sdk.AccAddress, mint string, amount uint64) UnstakeMsg {
	return UnstakeMsg{Owner: owner, TokenMint: mint, Amount: amount}
}

func (msg UnstakeMsg) Route() string { return MsgRoute }
func (msg UnstakeMsg) Type() string  { return UnstakeMsgType }
func (msg UnstakeMsg) String() string {
	return fmt.Sprintf("Unstake{%v#%v#%v}", msg.Owner, msg.TokenMint, msg.Amount)
}
func (msg UnstakeMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg UnstakeMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Owner} }
func (msg UnstakeMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg UnstakeMsg) ValidateBasic() sdk.Error { return validateBasic(msg.Owner, msg.TokenMint) }

var _ sdk.Msg = ClaimRewardsMsg{}

type ClaimRewardsMsg struct {
	Owner     sdk.AccAddress `json:"owner"`
	TokenMint string         `json:"token_mint"`
}

func NewClaimRewardsMsg(owner sdk.AccAddress, mint string) ClaimRewardsMsg {
	return ClaimRewardsMsg{Owner: owner, TokenMint: mint}
}

func (msg ClaimRewardsMsg) Route() string { return MsgRoute }
func (msg ClaimRewardsMsg) Type() string  { return ClaimRewardsMsgType }
func (msg ClaimRewardsMsg) String() string {
	return fmt.Sprintf("ClaimRewards{%v#%v}", msg.Owner, msg.TokenMint)
}
func (msg ClaimRewardsMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg ClaimRewardsMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Owner} }
func (msg ClaimRewardsMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }
func (msg ClaimRewardsMsg) ValidateBasic() sdk.Error               { return validateBasic(msg.Owner, msg.TokenMint) }

var _ sdk.Msg = SetPausedMsg{}

type SetPausedMsg struct {
	Authority sdk.AccAddress `json:"authority"`
	TokenMint string         `json:"token_mint"`
	Paused    bool           `json:"paused"`
}

func NewSetPausedMsg(authority sdk.AccAddress, mint string, paused bool) SetPausedMsg {
	return SetPausedMsg{Authority: authority, TokenMint: mint, Paused: paused}
}

func (msg SetPausedMsg) Route() string { return MsgRoute }
func (msg SetPausedMsg) Type() string  { return SetPausedMsgType }
func (msg SetPausedMsg) String() string {
	return fmt.Sprintf("SetPaused{%v#%v#%v}", msg.Authority, msg.TokenMint, msg.Paused)
}
func (msg SetPausedMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg SetPausedMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Authority} }
func (msg SetPausedMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }
func (msg SetPausedMsg) ValidateBasic() sdk.Error               { return validateBasic(msg.Authority, msg.TokenMint) }
