package governance

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case InitGovernanceMsg:
			return handleInitGovernance(ctx, keeper, msg)
		case CreateProposalMsg:
			return handleCreateProposal(ctx, keeper, msg)
		case VoteMsg:
			return handleVote(ctx, keeper, msg)
		case FinalizeProposalMsg:
			return handleFinalize(ctx, keeper, msg)
		case ExecuteProposalMsg:
			return handleExecute(ctx, keeper, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized governance message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleInitGovernance(ctx sdk.Context, keeper Keeper, msg InitGovernanceMsg) sdk.Result {
	gov, err := keeper.InitGovernance(ctx, msg.Authority, msg.TokenMint, msg.QuorumPercent,
		msg.ProposalThreshold, msg.VotingPeriodDays)
	if err != nil {
		return err.Result()
	}
	tags := sdk.EmptyTags().
		AppendTag(TagAction, []byte(InitGovernanceMsgType)).
		AppendTag(TagTokenMint, []byte(gov.TokenMint))
	return sdk.Result{Tags: tags}
}

func handleCreateProposal(ctx sdk.Context, keeper Keeper, msg CreateProposalMsg) sdk.Result {
	gov, err := keeper.MustGetGovernance(ctx, msg.TokenMint)
	if err != nil {
		return err.Result()
	}
	proposal, err := keeper.CreateProposal(ctx, gov, msg.Proposer, msg.Title, msg.Description, msg.ProposalType)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Data: []byte(fmt.Sprintf("%d", proposal.Id)),
		Tags: proposalTags(CreateProposalMsgType, gov.TokenMint, proposal),
	}
}

func handleVote(ctx sdk.Context, keeper Keeper, msg VoteMsg) sdk.Result {
	gov, err := keeper.MustGetGovernance(ctx, msg.TokenMint)
	if err != nil {
		return err.Result()
	}
	record, err := keeper.Vote(ctx, gov, msg.ProposalId, msg.Voter, msg.Vote)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{Tags: voteTags(gov.TokenMint, record)}
}

func handleFinalize(ctx sdk.Context, keeper Keeper, msg FinalizeProposalMsg) sdk.Result {
	gov, err := keeper.MustGetGovernance(ctx, msg.TokenMint)
	if err != nil {
		return err.Result()
	}
	proposal, err := keeper.Finalize(ctx, gov, msg.ProposalId)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{Tags: proposalTags(FinalizeProposalMsgType, gov.TokenMint, proposal)}
}

func handleExecute(ctx sdk.Context, keeper Keeper, msg ExecuteProposalMsg) sdk.Result {
	gov, err := keeper.MustGetGovernance(ctx, msg.TokenMint)
	if err != nil {
		return err.Result()
	}
	proposal, err := keeper.Execute(ctx, gov, msg.ProposalId, msg.From)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{Tags: proposalTags(ExecuteProposalMsgType, gov.TokenMint, proposal)}
}
