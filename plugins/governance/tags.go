package governance

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TagAction     = "action"
	TagTokenMint  = "gov.mint"
	TagProposalId = "gov.proposal"
	TagStatus     = "gov.status"
	TagVoter      = "gov.voter"
	TagVote       = "gov.vote"
	TagWeight     = "gov.weight"
)

func proposalTags(action string, mint string, proposal Proposal) sdk.Tags {
	return sdk.EmptyTags().
		AppendTag(TagAction, []byte(action)).
		AppendTag(TagTokenMint, []byte(mint)).
		AppendTag(TagProposalId, []byte(strconv.FormatUint(proposal.Id, 10))).
		AppendTag(TagStatus, []byte(proposal.Status.String()))
}

func voteTags(mint string, record VoteRecord) sdk.Tags {
	return sdk.EmptyTags().
		AppendTag(TagAction, []byte(VoteMsgType)).
		AppendTag(TagTokenMint, []byte(mint)).
		AppendTag(TagProposalId, []byte(strconv.FormatUint(record.ProposalId, 10))).
		AppendTag(TagVoter, []byte(record.Voter.String())).
		AppendTag(TagVote, []byte(record.Vote.String())).
		AppendTag(TagWeight, []byte(strconv.FormatUint(record.VotingPower, 10)))
}
