package governance

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/uachain/node/common"
	"github.com/uachain/node/common/account"
	"github.com/uachain/node/common/testutils"
	"github.com/uachain/node/wire"
)

const (
	testMint  = "UA"
	startTime = int64(1_700_000_000)
	weekSecs  = int64(7 * 86400)
)

func setup() (sdk.Context, Keeper, account.Keeper) {
	ms := testutils.SetupMultiStoreForUnitTest()
	ctx := testutils.NewContext(ms, 1, startTime)
	cdc := wire.NewCodec()
	accKeeper := account.NewKeeper(cdc, common.AccountStoreKey)
	keeper := NewKeeper(cdc, common.GovernanceStoreKey, accKeeper)
	return ctx, keeper, accKeeper
}

func fund(t *testing.T, ctx sdk.Context, accKeeper account.Keeper, addr sdk.AccAddress, amount int64) {
	_, _, err := accKeeper.AddCoins(ctx, addr, sdk.Coins{sdk.NewCoin(testMint, amount)})
	require.Nil(t, err)
}

func initGov(t *testing.T, ctx sdk.Context, keeper Keeper, quorum uint8, threshold uint64) Governance {
	authority := testutils.NewAddrs(1)[0]
	gov, err := keeper.InitGovernance(ctx, authority, testMint, quorum, threshold, 7)
	require.Nil(t, err)
	return gov
}

func reload(t *testing.T, ctx sdk.Context, keeper Keeper) Governance {
	gov, found := keeper.GetGovernance(ctx, testMint)
	require.True(t, found)
	return gov
}

func TestKeeper_InitGovernance(t *testing.T) {
	ctx, keeper, _ := setup()
	authority := testutils.NewAddrs(1)[0]

	_, err := keeper.InitGovernance(ctx, authority, testMint, 101, 0, 7)
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidQuorum, err.Code())

	gov, err := keeper.InitGovernance(ctx, authority, testMint, 10, 1000, 0)
	require.Nil(t, err)
	require.Equal(t, uint8(DefaultVotingPeriodDays), gov.VotingPeriodDays)
	require.Equal(t, uint64(0), gov.ProposalCount)

	stored := reload(t, ctx, keeper)
	require.Equal(t, gov, stored)

	_, err = keeper.InitGovernance(ctx, authority, testMint, 10, 1000, 7)
	require.NotNil(t, err)
	require.Equal(t, CodeGovernanceExists, err.Code())
}

func TestKeeper_CreateProposal(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	gov := initGov(t, ctx, keeper, 10, 1000)
	proposer := testutils.NewAddrs(1)[0]

	_, err := keeper.CreateProposal(ctx, gov, proposer, "title", "desc", General)
	require.NotNil(t, err)
	require.Equal(t, CodeInsufficientTokensForProposal, err.Code())

	fund(t, ctx, accKeeper, proposer, 1000)
	p0, err := keeper.CreateProposal(ctx, gov, proposer, strings.Repeat("t", MaxTitleLength), "desc", TreasurySpend)
	require.Nil(t, err)
	require.Equal(t, uint64(0), p0.Id)
	require.Equal(t, StatusActive, p0.Status)
	require.Equal(t, startTime, p0.CreatedAt)
	require.Equal(t, startTime+weekSecs, p0.VotingEndTime)
	require.Zero(t, p0.YesVotes)
	require.Zero(t, p0.NoVotes)

	gov = reload(t, ctx, keeper)
	require.Equal(t, uint64(1), gov.ProposalCount)

	// a stale copy of the config still points at the taken id
	_, err = keeper.CreateProposal(ctx, Governance{TokenMint: testMint}, proposer, "stale", "", General)
	require.NotNil(t, err)
	require.Equal(t, CodeProposalExists, err.Code())

	p1, err := keeper.CreateProposal(ctx, gov, proposer, "second", "", ProtocolUpgrade)
	require.Nil(t, err)
	require.Equal(t, uint64(1), p1.Id)

	stored, found := keeper.GetProposal(ctx, testMint, 0)
	require.True(t, found)
	require.Equal(t, p0, stored)
	require.Len(t, keeper.GetProposals(ctx, testMint, 0, 100), 2)
	require.Len(t, keeper.GetProposals(ctx, testMint, 1, 100), 1)
	require.Len(t, keeper.GetProposals(ctx, testMint, 0, 1), 1)
}

func TestKeeper_CreateProposalLengthLimits(t *testing.T) {
	ctx, keeper, _ := setup()
	gov := initGov(t, ctx, keeper, 10, 0)
	proposer := testutils.NewAddrs(1)[0]

	_, err := keeper.CreateProposal(ctx, gov, proposer, strings.Repeat("t", MaxTitleLength+1), "", General)
	require.NotNil(t, err)
	require.Equal(t, CodeTitleTooLong, err.Code())

	_, err = keeper.CreateProposal(ctx, gov, proposer, "t", strings.Repeat("d", MaxDescriptionLength+1), General)
	require.NotNil(t, err)
	require.Equal(t, CodeDescriptionTooLong, err.Code())

	_, err = keeper.CreateProposal(ctx, gov, proposer, "t", strings.Repeat("d", MaxDescriptionLength), General)
	require.Nil(t, err)

	// failed creations must not consume ids
	require.Equal(t, uint64(1), reload(t, ctx, keeper).ProposalCount)
}

func TestKeeper_VoteOnce(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	gov := initGov(t, ctx, keeper, 10, 0)
	addrs := testutils.NewAddrs(3)
	proposer, voter, poor := addrs[0], addrs[1], addrs[2]
	fund(t, ctx, accKeeper, voter, 500)

	_, err := keeper.Vote(ctx, gov, 0, voter, VoteYes)
	require.NotNil(t, err)
	require.Equal(t, CodeProposalNotFound, err.Code())

	p, err := keeper.CreateProposal(ctx, gov, proposer, "t", "d", General)
	require.Nil(t, err)

	record, err := keeper.Vote(ctx, gov, p.Id, voter, VoteYes)
	require.Nil(t, err)
	require.Equal(t, uint64(500), record.VotingPower)
	require.True(t, record.HasVoted)

	// a second vote fails whatever the choice, and tallies stay put
	fund(t, ctx, accKeeper, voter, 500)
	_, err = keeper.Vote(ctx, gov, p.Id, voter, VoteNo)
	require.NotNil(t, err)
	require.Equal(t, CodeAlreadyVoted, err.Code())
	_, err = keeper.Vote(ctx, gov, p.Id, voter, VoteYes)
	require.Equal(t, CodeAlreadyVoted, err.Code())

	stored, _ := keeper.GetProposal(ctx, testMint, p.Id)
	require.Equal(t, uint64(500), stored.YesVotes)
	require.Zero(t, stored.NoVotes)

	_, err = keeper.Vote(ctx, gov, p.Id, poor, VoteNo)
	require.NotNil(t, err)
	require.Equal(t, CodeNoVotingPower, err.Code())
	_, found := keeper.GetVoteRecord(ctx, testMint, p.Id, poor)
	require.False(t, found)

	require.Len(t, keeper.GetVoteRecords(ctx, testMint, p.Id), 1)
}

func TestKeeper_VotingWindow(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	gov := initGov(t, ctx, keeper, 10, 0)
	addrs := testutils.NewAddrs(2)
	fund(t, ctx, accKeeper, addrs[0], 10)
	fund(t, ctx, accKeeper, addrs[1], 10)
	p, err := keeper.CreateProposal(ctx, gov, addrs[0], "t", "d", General)
	require.Nil(t, err)

	// the deadline itself is still inside the window
	_, err = keeper.Vote(testutils.AtTime(ctx, p.VotingEndTime), gov, p.Id, addrs[0], VoteYes)
	require.Nil(t, err)

	_, err = keeper.Vote(testutils.AtTime(ctx, p.VotingEndTime+1), gov, p.Id, addrs[1], VoteYes)
	require.NotNil(t, err)
	require.Equal(t, CodeVotingPeriodEnded, err.Code())

	_, err = keeper.Finalize(testutils.AtTime(ctx, p.VotingEndTime), gov, p.Id)
	require.NotNil(t, err)
	require.Equal(t, CodeVotingPeriodNotEnded, err.Code())
}

func runProposal(t *testing.T, yes, no int64) (sdk.Context, Keeper, Governance, Proposal) {
	ctx, keeper, accKeeper := setup()
	gov := initGov(t, ctx, keeper, 10, 0)
	addrs := testutils.NewAddrs(3)
	p, err := keeper.CreateProposal(ctx, gov, addrs[0], "t", "d", ParameterChange)
	require.Nil(t, err)
	if yes > 0 {
		fund(t, ctx, accKeeper, addrs[1], yes)
		_, err = keeper.Vote(ctx, gov, p.Id, addrs[1], VoteYes)
		require.Nil(t, err)
	}
	if no > 0 {
		fund(t, ctx, accKeeper, addrs[2], no)
		_, err = keeper.Vote(ctx, gov, p.Id, addrs[2], VoteNo)
		require.Nil(t, err)
	}
	ctx = testutils.AtTime(ctx, p.VotingEndTime+1)
	p, err = keeper.Finalize(ctx, gov, p.Id)
	require.Nil(t, err)
	return ctx, keeper, gov, p
}

func TestKeeper_FinalizeQuorumBoundary(t *testing.T) {
	quorum, err := QuorumRequired(Governance{QuorumPercent: 10})
	require.Nil(t, err)
	require.Equal(t, uint64(1_000_000), quorum)

	_, _, _, p := runProposal(t, 600_000, 400_000)
	require.Equal(t, StatusPassed, p.Status)

	_, _, _, p = runProposal(t, 600_000, 399_999)
	require.Equal(t, StatusQuorumNotMet, p.Status)

	_, _, _, p = runProposal(t, 0, 0)
	require.Equal(t, StatusQuorumNotMet, p.Status)
}

func TestKeeper_FinalizeOutcome(t *testing.T) {
	_, _, _, p := runProposal(t, 500_000, 500_000)
	require.Equal(t, StatusRejected, p.Status)

	_, _, _, p = runProposal(t, 400_000, 900_000)
	require.Equal(t, StatusRejected, p.Status)

	_, _, _, p = runProposal(t, 1_000_001, 1_000_000)
	require.Equal(t, StatusPassed, p.Status)
}

func TestKeeper_FinalizeTwice(t *testing.T) {
	ctx, keeper, gov, p := runProposal(t, 2_000_000, 0)
	require.Equal(t, StatusPassed, p.Status)

	_, err := keeper.Finalize(ctx, gov, p.Id)
	require.NotNil(t, err)
	require.Equal(t, CodeProposalNotActive, err.Code())

	stored, _ := keeper.GetProposal(ctx, testMint, p.Id)
	require.Equal(t, StatusPassed, stored.Status)
}

func TestKeeper_Execute(t *testing.T) {
	ctx, keeper, gov, p := runProposal(t, 2_000_000, 0)
	executor := testutils.NewAddrs(1)[0]

	var dispatched []ProposalType
	record := func(ctx sdk.Context, gov Governance, proposal Proposal) sdk.Error {
		dispatched = append(dispatched, proposal.ProposalType)
		return nil
	}
	keeper.SetExecutors(Executors{
		ParameterChange: record,
		TreasurySpend:   record,
		ProtocolUpgrade: record,
		General:         record,
	})

	executed, err := keeper.Execute(ctx, gov, p.Id, executor)
	require.Nil(t, err)
	require.Equal(t, StatusExecuted, executed.Status)
	require.Equal(t, []ProposalType{ParameterChange}, dispatched)

	_, err = keeper.Execute(ctx, gov, p.Id, executor)
	require.NotNil(t, err)
	require.Equal(t, CodeProposalNotPassed, err.Code())
	require.Len(t, dispatched, 1)
}

func TestKeeper_ExecuteRequiresPassed(t *testing.T) {
	ctx, keeper, gov, p := runProposal(t, 1, 0)
	require.Equal(t, StatusQuorumNotMet, p.Status)

	_, err := keeper.Execute(ctx, gov, p.Id, testutils.NewAddrs(1)[0])
	require.NotNil(t, err)
	require.Equal(t, CodeProposalNotPassed, err.Code())
}

func TestKeeper_ExecuteHandlerFailureKeepsPassed(t *testing.T) {
	ctx, keeper, gov, p := runProposal(t, 2_000_000, 0)
	fail := func(ctx sdk.Context, gov Governance, proposal Proposal) sdk.Error {
		return sdk.ErrInternal("boom")
	}
	executors := DefaultExecutors(keeper.Logger())
	executors.ParameterChange = fail
	keeper.SetExecutors(executors)

	_, err := keeper.Execute(ctx, gov, p.Id, testutils.NewAddrs(1)[0])
	require.NotNil(t, err)

	stored, _ := keeper.GetProposal(ctx, testMint, p.Id)
	require.Equal(t, StatusPassed, stored.Status)
}
