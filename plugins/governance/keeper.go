package governance

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	ualog "github.com/uachain/node/common/log"
	"github.com/uachain/node/common/types"
	"github.com/uachain/node/common/utils"
)

// BankKeeper is the balance reader votes and proposal thresholds are measured with.
type BankKeeper interface {
	GetCoins(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
}

type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	bk        BankKeeper
	executors Executors
	logger    tmlog.Logger

	defaultVotingPeriodDays uint8
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, bk BankKeeper) Keeper {
	logger := ualog.With("module", "governance")
	return Keeper{
		storeKey:                key,
		cdc:                     cdc,
		bk:                      bk,
		executors:               DefaultExecutors(logger),
		logger:                  logger,
		defaultVotingPeriodDays: DefaultVotingPeriodDays,
	}
}

// SetExecutors replaces the per-type execution handlers.
func (k *Keeper) SetExecutors(executors Executors) {
	k.executors = executors
}

// SetDefaultVotingPeriodDays sets the period used when InitGovernance is given 0 days.
func (k *Keeper) SetDefaultVotingPeriodDays(days uint8) {
	if days > 0 {
		k.defaultVotingPeriodDays = days
	}
}

func (k Keeper) Logger() tmlog.Logger {
	return k.logger
}

func now(ctx sdk.Context) int64 {
	return ctx.BlockHeader().Time.Unix()
}

func (k Keeper) balanceOf(ctx sdk.Context, addr sdk.AccAddress, mint string) uint64 {
	return utils.FromCoinAmount(k.bk.GetCoins(ctx, addr).AmountOf(mint))
}

// ----------------------------------------------------------------------------
// governance

func (k Keeper) InitGovernance(ctx sdk.Context, authority sdk.AccAddress, mint string,
	quorumPercent uint8, proposalThreshold uint64, votingPeriodDays uint8) (Governance, sdk.Error) {
	if err := types.ValidateDenom(mint); err != nil {
		return Governance{}, ErrInvalidTokenMint(err.Error())
	}
	if quorumPercent > 100 {
		return Governance{}, ErrInvalidQuorum(quorumPercent)
	}
	if _, found := k.GetGovernance(ctx, mint); found {
		return Governance{}, ErrGovernanceExists(mint)
	}
	if votingPeriodDays == 0 {
		votingPeriodDays = k.defaultVotingPeriodDays
	}

	gov := Governance{
		Authority:         authority,
		TokenMint:         mint,
		QuorumPercent:     quorumPercent,
		ProposalThreshold: proposalThreshold,
		ProposalCount:     0,
		VotingPeriodDays:  votingPeriodDays,
	}
	k.SetGovernance(ctx, gov)
	k.logger.Info("governance initialized", "mint", mint, "quorum", quorumPercent,
		"threshold", proposalThreshold, "days", votingPeriodDays)
	return gov, nil
}

func (k Keeper) GetGovernance(ctx sdk.Context, mint string) (Governance, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetGovernanceKey(mint))
	if bz == nil {
		return Governance{}, false
	}
	var gov Governance
	k.cdc.MustUnmarshalBinaryBare(bz, &gov)
	return gov, true
}

// MustGetGovernance loads the instance for mint or reports GovernanceNotFound.
func (k Keeper) MustGetGovernance(ctx sdk.Context, mint string) (Governance, sdk.Error) {
	gov, found := k.GetGovernance(ctx, mint)
	if !found {
		return Governance{}, ErrGovernanceNotFound(mint)
	}
	return gov, nil
}

func (k Keeper) SetGovernance(ctx sdk.Context, gov Governance) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetGovernanceKey(gov.TokenMint), k.cdc.MustMarshalBinaryBare(gov))
}

func (k Keeper) GetAllGovernances(ctx sdk.Context) []Governance {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, GovernanceKey)
	defer iter.Close()

	var res []Governance
	for ; iter.Valid(); iter.Next() {
		var gov Governance
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &gov)
		res = append(res, gov)
	}
	return res
}

// ----------------------------------------------------------------------------
// proposals

func (k Keeper) GetProposal(ctx sdk.Context, mint string, id uint64) (Proposal, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetProposalKey(mint, id))
	if bz == nil {
		return Proposal{}, false
	}
	var proposal Proposal
	k.cdc.MustUnmarshalBinaryBare(bz, &proposal)
	return proposal, true
}

func (k Keeper) setProposal(ctx sdk.Context, mint string, proposal Proposal) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetProposalKey(mint, proposal.Id), k.cdc.MustMarshalBinaryBare(proposal))
}

// GetProposals returns up to limit proposals of mint with id >= startId, ordered by id.
func (k Keeper) GetProposals(ctx sdk.Context, mint string, startId uint64, limit int) []Proposal {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, GetProposalQueueKey(mint))
	defer iter.Close()

	proposals := make([]Proposal, 0)
	for ; iter.Valid() && len(proposals) < limit; iter.Next() {
		var proposal Proposal
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &proposal)
		if proposal.Id < startId {
			continue
		}
		proposals = append(proposals, proposal)
	}
	return proposals
}

// CreateProposal allocates the next id of gov and stores an Active proposal under it.
// The counter increment and the proposal write land in the same store.
func (k Keeper) CreateProposal(ctx sdk.Context, gov Governance, proposer sdk.AccAddress,
	title, description string, proposalType ProposalType) (Proposal, sdk.Error) {
	if len(title) > MaxTitleLength {
		return Proposal{}, ErrTitleTooLong(len(title))
	}
	if len(description) > MaxDescriptionLength {
		return Proposal{}, ErrDescriptionTooLong(len(description))
	}
	if !proposalType.IsValid() {
		return Proposal{}, ErrInvalidProposalType(proposalType)
	}
	if balance := k.balanceOf(ctx, proposer, gov.TokenMint); balance < gov.ProposalThreshold {
		return Proposal{}, ErrInsufficientTokensForProposal(balance, gov.ProposalThreshold)
	}

	id := gov.ProposalCount
	if _, found := k.GetProposal(ctx, gov.TokenMint, id); found {
		return Proposal{}, ErrProposalExists(gov.TokenMint, id)
	}
	nextCount, err := utils.SafeAdd(gov.ProposalCount, 1)
	if err != nil {
		return Proposal{}, err
	}
	createdAt := now(ctx)
	votingEnd, err := utils.AddDays(createdAt, uint64(gov.VotingPeriodDays))
	if err != nil {
		return Proposal{}, err
	}

	proposal := Proposal{
		Id:            id,
		Proposer:      proposer,
		Title:         title,
		Description:   description,
		ProposalType:  proposalType,
		CreatedAt:     createdAt,
		VotingEndTime: votingEnd,
		Status:        StatusActive,
	}
	k.setProposal(ctx, gov.TokenMint, proposal)
	gov.ProposalCount = nextCount
	k.SetGovernance(ctx, gov)

	k.logger.Info("proposal created", "mint", gov.TokenMint, "id", id, "type", proposalType, "proposer", proposer.String())
	return proposal, nil
}

// Vote records voter's current balance as weight on the chosen side.
func (k Keeper) Vote(ctx sdk.Context, gov Governance, id uint64, voter sdk.AccAddress, choice VoteChoice) (VoteRecord, sdk.Error) {
	if !choice.IsValid() {
		return VoteRecord{}, ErrInvalidVoteChoice(choice)
	}
	proposal, found := k.GetProposal(ctx, gov.TokenMint, id)
	if !found {
		return VoteRecord{}, ErrProposalNotFound(gov.TokenMint, id)
	}
	if proposal.Status != StatusActive {
		return VoteRecord{}, ErrProposalNotActive(id, proposal.Status)
	}
	if now(ctx) > proposal.VotingEndTime {
		return VoteRecord{}, ErrVotingPeriodEnded(id, proposal.VotingEndTime)
	}
	if _, voted := k.GetVoteRecord(ctx, gov.TokenMint, id, voter); voted {
		return VoteRecord{}, ErrAlreadyVoted(id, voter)
	}
	weight := k.balanceOf(ctx, voter, gov.TokenMint)
	if weight == 0 {
		return VoteRecord{}, ErrNoVotingPower(voter)
	}

	var err sdk.Error
	switch choice {
	case VoteYes:
		proposal.YesVotes, err = utils.SafeAdd(proposal.YesVotes, weight)
	case VoteNo:
		proposal.NoVotes, err = utils.SafeAdd(proposal.NoVotes, weight)
	}
	if err != nil {
		return VoteRecord{}, err
	}

	record := VoteRecord{
		Voter:       voter,
		ProposalId:  id,
		Vote:        choice,
		VotingPower: weight,
		HasVoted:    true,
	}
	k.setVoteRecord(ctx, gov.TokenMint, record)
	k.setProposal(ctx, gov.TokenMint, proposal)

	k.logger.Debug("vote cast", "mint", gov.TokenMint, "id", id, "voter", voter.String(), "choice", choice, "weight", weight)
	return record, nil
}

// QuorumRequired is the total weight a proposal of gov needs before it can pass.
func QuorumRequired(gov Governance) (uint64, sdk.Error) {
	return utils.MulDiv(FixedTotalSupply, uint64(gov.QuorumPercent), 100)
}

// Finalize settles an Active proposal whose voting period is over.
func (k Keeper) Finalize(ctx sdk.Context, gov Governance, id uint64) (Proposal, sdk.Error) {
	proposal, found := k.GetProposal(ctx, gov.TokenMint, id)
	if !found {
		return Proposal{}, ErrProposalNotFound(gov.TokenMint, id)
	}
	if proposal.Status != StatusActive {
		return Proposal{}, ErrProposalNotActive(id, proposal.Status)
	}
	if now(ctx) <= proposal.VotingEndTime {
		return Proposal{}, ErrVotingPeriodNotEnded(id, proposal.VotingEndTime)
	}

	quorum, err := QuorumRequired(gov)
	if err != nil {
		return Proposal{}, err
	}
	total, err := utils.SafeAdd(proposal.YesVotes, proposal.NoVotes)
	if err != nil {
		return Proposal{}, err
	}

	switch {
	case total < quorum:
		proposal.Status = StatusQuorumNotMet
	case proposal.YesVotes > proposal.NoVotes:
		proposal.Status = StatusPassed
	default:
		proposal.Status = StatusRejected
	}
	k.setProposal(ctx, gov.TokenMint, proposal)

	k.logger.Info("proposal finalized", "mint", gov.TokenMint, "id", id, "status", proposal.Status,
		"yes", proposal.YesVotes, "no", proposal.NoVotes, "quorum", quorum)
	return proposal, nil
}

// Execute dispatches a Passed proposal to the handler of its type and marks it Executed.
func (k Keeper) Execute(ctx sdk.Context, gov Governance, id uint64, executor sdk.AccAddress) (Proposal, sdk.Error) {
	proposal, found := k.GetProposal(ctx, gov.TokenMint, id)
	if !found {
		return Proposal{}, ErrProposalNotFound(gov.TokenMint, id)
	}
	if proposal.Status != StatusPassed {
		return Proposal{}, ErrProposalNotPassed(id, proposal.Status)
	}
	handler, err := k.executors.handlerFor(proposal.ProposalType)
	if err != nil {
		return Proposal{}, err
	}
	if err := handler(ctx, gov, proposal); err != nil {
		return Proposal{}, err
	}

	proposal.Status = StatusExecuted
	k.setProposal(ctx, gov.TokenMint, proposal)
	k.logger.Info("proposal executed", "mint", gov.TokenMint, "id", id, "type", proposal.ProposalType, "executor", executor.String())
	return proposal, nil
}

// ----------------------------------------------------------------------------
// vote records

func (k Keeper) GetVoteRecord(ctx sdk.Context, mint string, id uint64, voter sdk.AccAddress) (VoteRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetVoteKey(mint, id, voter))
	if bz == nil {
		return VoteRecord{}, false
	}
	var record VoteRecord
	k.cdc.MustUnmarshalBinaryBare(bz, &record)
	return record, true
}

func (k Keeper) setVoteRecord(ctx sdk.Context, mint string, record VoteRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetVoteKey(mint, record.ProposalId, record.Voter), k.cdc.MustMarshalBinaryBare(record))
}

func (k Keeper) GetVoteRecords(ctx sdk.Context, mint string, id uint64) []VoteRecord {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, GetVoteQueueKey(mint, id))
	defer iter.Close()

	records := make([]VoteRecord, 0)
	for ; iter.Valid(); iter.Next() {
		var record VoteRecord
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &record)
		records = append(records, record)
	}
	return records
}
