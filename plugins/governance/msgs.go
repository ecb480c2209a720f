package governance

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/common/types"
)

const (
	MsgRoute = "governance"

	InitGovernanceMsgType   = "govInit"
	CreateProposalMsgType   = "govPropose"
	VoteMsgType             = "govVote"
	FinalizeProposalMsgType = "govFinalize"
	ExecuteProposalMsgType  = "govExecute"
)

func mustMarshalSignBytes(msg interface{}) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func validateMint(mint string) sdk.Error {
	if err := types.ValidateDenom(mint); err != nil {
		return ErrInvalidTokenMint(err.Error())
	}
	return nil
}

var _ sdk.Msg = InitGovernanceMsg{}

type InitGovernanceMsg struct {
	Authority         sdk.AccAddress `json:"authority"`
	TokenMint         string         `json:"token_mint"`
	QuorumPercent     uint8          `json:"quorum_percent"`
	ProposalThreshold uint64         `json:"proposal_threshold"`
	VotingPeriodDays  uint8          `json:"voting_period_days"`
}

func NewInitGovernanceMsg(authority sdk.AccAddress, mint string, quorumPercent uint8, threshold uint64, days uint8) InitGovernanceMsg {
	return InitGovernanceMsg{
		Authority:         authority,
		TokenMint:         mint,
		QuorumPercent:     quorumPercent,
		ProposalThreshold: threshold,
		VotingPeriodDays:  days,
	}
}

func (msg InitGovernanceMsg) Route() string { return MsgRoute }
func (msg InitGovernanceMsg) Type() string  { return InitGovernanceMsgType }
func (msg InitGovernanceMsg) String() string {
	return fmt.Sprintf("InitGovernance{%v#%v#%v#%v#%v}", msg.Authority, msg.TokenMint, msg.QuorumPercent,
		msg.ProposalThreshold, msg.VotingPeriodDays)
}
func (msg InitGovernanceMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg InitGovernanceMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Authority} }
func (msg InitGovernanceMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg InitGovernanceMsg) ValidateBasic() sdk.Error {
	if len(msg.Authority) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.Authority.String())
	}
	if err := validateMint(msg.TokenMint); err != nil {
		return err
	}
	if msg.QuorumPercent > 100 {
		return ErrInvalidQuorum(msg.QuorumPercent)
	}
	return nil
}

var _ sdk.Msg = CreateProposalMsg{}

type CreateProposalMsg struct {
	Proposer     sdk.AccAddress `json:"proposer"`
	TokenMint    string         `json:"token_mint"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ProposalType ProposalType   `json:"proposal_type"`
}

func NewCreateProposalMsg(proposer sdk.AccAddress, mint, title, description string, proposalType ProposalType) CreateProposalMsg {
	return CreateProposalMsg{
		Proposer:     proposer,
		TokenMint:    mint,
		Title:        title,
		Description:  description,
		ProposalType: proposalType,
	}
}

func (msg CreateProposalMsg) Route() string { return MsgRoute }
func (msg CreateProposalMsg) Type() string  { return CreateProposalMsgType }
func (msg CreateProposalMsg) String() string {
	return fmt.Sprintf("CreateProposal{%v#%v#%v#%v}", msg.Proposer, msg.TokenMint, msg.Title, msg.ProposalType)
}
func (msg CreateProposalMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg CreateProposalMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Proposer} }
func (msg CreateProposalMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg CreateProposalMsg) ValidateBasic() sdk.Error {
	if len(msg.Proposer) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.Proposer.String())
	}
	if err := validateMint(msg.TokenMint); err != nil {
		return err
	}
	if len(msg.Title) > MaxTitleLength {
		return ErrTitleTooLong(len(msg.Title))
	}
	if len(msg.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong(len(msg.Description))
	}
	if !msg.ProposalType.IsValid() {
		return ErrInvalidProposalType(msg.ProposalType)
	}
	return nil
}

var _ sdk.Msg = VoteMsg{}

type VoteMsg struct {
	Voter      sdk.AccAddress `json:"voter"`
	TokenMint  string         `json:"token_mint"`
	ProposalId uint64         `json:"proposal_id"`
	Vote       VoteChoice     `json:"vote"`
}

func NewVoteMsg(voter sdk.AccAddress, mint string, proposalId uint64, vote VoteChoice) VoteMsg {
	return VoteMsg{
		Voter:      voter,
		TokenMint:  mint,
		ProposalId: proposalId,
		Vote:       vote,
	}
}

func (msg VoteMsg) Route() string { return MsgRoute }
func (msg VoteMsg) Type() string  { return VoteMsgType }
func (msg VoteMsg) String() string {
	return fmt.Sprintf("Vote{%v#%v#%v#%v}", msg.Voter, msg.TokenMint, msg.ProposalId, msg.Vote)
}
func (msg VoteMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg VoteMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Voter} }
func (msg VoteMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg VoteMsg) ValidateBasic() sdk.Error {
	if len(msg.Voter) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.Voter.String())
	}
	if err := validateMint(msg.TokenMint); err != nil {
		return err
	}
	if !msg.Vote.IsValid() {
		return ErrInvalidVoteChoice(msg.Vote)
	}
	return nil
}

var _ sdk.Msg = FinalizeProposalMsg{}

// FinalizeProposalMsg may be sent by anyone once the voting period is over.
type FinalizeProposalMsg struct {
	From       sdk.AccAddress `json:"from"`
	TokenMint  string         `json:"token_mint"`
	ProposalId uint64         `json:"proposal_id"`
}

func NewFinalizeProposalMsg(from sdk.AccAddress, mint string, proposalId uint64) FinalizeProposalMsg {
	return FinalizeProposalMsg{From: from, TokenMint: mint, ProposalId: proposalId}
}

func (msg FinalizeProposalMsg) Route() string { return MsgRoute }
func (msg FinalizeProposalMsg) Type() string  { return FinalizeProposalMsgType }
func (msg FinalizeProposalMsg) String() string {
	return fmt.Sprintf("FinalizeProposal{%v#%v#%v}", msg.From, msg.TokenMint, msg.ProposalId)
}
func (msg FinalizeProposalMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg FinalizeProposalMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg FinalizeProposalMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg FinalizeProposalMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.From.String())
	}
	return validateMint(msg.TokenMint)
}

var _ sdk.Msg = ExecuteProposalMsg{}

type ExecuteProposalMsg struct {
	From       sdk.AccAddress `json:"from"`
	TokenMint  string         `json:"token_mint"`
	ProposalId uint64         `json:"proposal_id"`
}

func NewExecuteProposalMsg(from sdk.AccAddress, mint string, proposalId uint64) ExecuteProposalMsg {
	return ExecuteProposalMsg{From: from, TokenMint: mint, ProposalId: proposalId}
}

func (msg ExecuteProposalMsg) Route() string { return MsgRoute }
func (msg ExecuteProposalMsg) Type() string  { return ExecuteProposalMsgType }
func (msg ExecuteProposalMsg) String() string {
	return fmt.Sprintf("ExecuteProposal{%v#%v#%v}", msg.From, msg.TokenMint, msg.ProposalId)
}
func (msg ExecuteProposalMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg ExecuteProposalMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg ExecuteProposalMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg ExecuteProposalMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.From.String())
	}
	return validateMint(msg.TokenMint)
}
