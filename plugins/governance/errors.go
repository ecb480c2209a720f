package governance

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 11

	CodeTitleTooLong                  sdk.CodeType = 1
	CodeDescriptionTooLong            sdk.CodeType = 2
	CodeInsufficientTokensForProposal sdk.CodeType = 3
	CodeProposalNotActive             sdk.CodeType = 4
	CodeVotingPeriodEnded             sdk.CodeType = 5
	CodeAlreadyVoted                  sdk.CodeType = 6
	CodeNoVotingPower                 sdk.CodeType = 7
	CodeVotingPeriodNotEnded          sdk.CodeType = 8
	CodeProposalNotPassed             sdk.CodeType = 9
	CodeGovernanceNotFound            sdk.CodeType = 10
	CodeGovernanceExists              sdk.CodeType = 11
	CodeInvalidQuorum                 sdk.CodeType = 12
	CodeProposalNotFound              sdk.CodeType = 13
	CodeProposalExists                sdk.CodeType = 14
	CodeInvalidProposalType           sdk.CodeType = 15
	CodeInvalidVoteChoice             sdk.CodeType = 16
	CodeInvalidTokenMint              sdk.CodeType = 17
)

func ErrTitleTooLong(length int) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeTitleTooLong,
		fmt.Sprintf("Title too long (max %d characters), got %d", MaxTitleLength, length))
}

func ErrDescriptionTooLong(length int) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDescriptionTooLong,
		fmt.Sprintf("Description too long (max %d characters), got %d", MaxDescriptionLength, length))
}

func ErrInsufficientTokensForProposal(balance, threshold uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInsufficientTokensForProposal,
		fmt.Sprintf("Insufficient tokens to create proposal, balance %d < threshold %d", balance, threshold))
}

func ErrProposalNotActive(id uint64, status ProposalStatus) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalNotActive,
		fmt.Sprintf("Proposal %d is not active, status is %s", id, status))
}

func ErrVotingPeriodEnded(id uint64, end int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVotingPeriodEnded,
		fmt.Sprintf("Voting period of proposal %d ended at %d", id, end))
}

func ErrAlreadyVoted(id uint64, voter sdk.AccAddress) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyVoted,
		fmt.Sprintf("%s already voted on proposal %d", voter.String(), id))
}

func ErrNoVotingPower(voter sdk.AccAddress) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNoVotingPower, fmt.Sprintf("%s has no voting power", voter.String()))
}

func ErrVotingPeriodNotEnded(id uint64, end int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVotingPeriodNotEnded,
		fmt.Sprintf("Voting period of proposal %d has not ended, ends at %d", id, end))
}

func ErrProposalNotPassed(id uint64, status ProposalStatus) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalNotPassed,
		fmt.Sprintf("Proposal %d has not passed, status is %s", id, status))
}

func ErrGovernanceNotFound(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeGovernanceNotFound, fmt.Sprintf("No governance for token %s", mint))
}

func ErrGovernanceExists(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeGovernanceExists, fmt.Sprintf("Governance for token %s already exists", mint))
}

func ErrInvalidQuorum(quorum uint8) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidQuorum,
		fmt.Sprintf("Quorum percent(%d) should be less than or equal to 100", quorum))
}

func ErrProposalNotFound(mint string, id uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalNotFound, fmt.Sprintf("Proposal %d of token %s does not exist", id, mint))
}

func ErrProposalExists(mint string, id uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalExists, fmt.Sprintf("Proposal %d of token %s already exists", id, mint))
}

func ErrInvalidProposalType(pt ProposalType) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidProposalType, fmt.Sprintf("Invalid proposal type %d", pt))
}

func ErrInvalidVoteChoice(vc VoteChoice) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidVoteChoice, fmt.Sprintf("Invalid vote choice %d", vc))
}

func ErrInvalidTokenMint(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidTokenMint, fmt.Sprintf("Invalid token mint: %s", msg))
}
