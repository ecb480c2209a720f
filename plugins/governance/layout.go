package governance

import (
	"github.com/uachain/node/common/types"
)

const (
	GovernanceLayoutSize = types.IdentitySlotSize + types.MintSlotSize + 1 + 8 + 8 + 1
	ProposalLayoutSize   = 8 + types.IdentitySlotSize + types.LengthPrefixSize + MaxTitleLength +
		types.LengthPrefixSize + MaxDescriptionLength + 1 + 8 + 8 + 8 + 8 + 1
	VoteRecordLayoutSize = types.IdentitySlotSize + 8 + 1 + 8 + 1
)

// MarshalLayout encodes gov in its fixed-size persisted layout.
func (gov Governance) MarshalLayout() []byte {
	return types.NewLayoutWriter(GovernanceLayoutSize).
		PutIdentity(gov.Authority).
		PutMint(gov.TokenMint).
		PutUint8(gov.QuorumPercent).
		PutUint64(gov.ProposalThreshold).
		PutUint64(gov.ProposalCount).
		PutUint8(gov.VotingPeriodDays).
		Bytes()
}

// MarshalLayout encodes p in its fixed-size persisted layout. Title and
// description carry a length prefix ahead of their zero-padded slot.
func (p Proposal) MarshalLayout() []byte {
	return types.NewLayoutWriter(ProposalLayoutSize).
		PutUint64(p.Id).
		PutIdentity(p.Proposer).
		PutString(p.Title, MaxTitleLength).
		PutString(p.Description, MaxDescriptionLength).
		PutUint8(uint8(p.ProposalType)).
		PutInt64(p.CreatedAt).
		PutInt64(p.VotingEndTime).
		PutUint64(p.YesVotes).
		PutUint64(p.NoVotes).
		PutUint8(uint8(p.Status)).
		Bytes()
}

func (v VoteRecord) MarshalLayout() []byte {
	return types.NewLayoutWriter(VoteRecordLayoutSize).
		PutIdentity(v.Voter).
		PutUint64(v.ProposalId).
		PutUint8(uint8(v.Vote)).
		PutUint64(v.VotingPower).
		PutBool(v.HasVoted).
		Bytes()
}
