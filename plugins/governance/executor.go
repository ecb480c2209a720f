package governance

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// ProposalHandler performs the effect of a passed proposal. The state machine
// only gates and dispatches; what the effect is belongs to the handler.
type ProposalHandler func(ctx sdk.Context, gov Governance, proposal Proposal) sdk.Error

// Executors holds exactly one handler per proposal type.
type Executors struct {
	ParameterChange ProposalHandler
	TreasurySpend   ProposalHandler
	ProtocolUpgrade ProposalHandler
	General         ProposalHandler
}

// DefaultExecutors only record that the proposal was executed.
func DefaultExecutors(logger tmlog.Logger) Executors {
	logOnly := func(action string) ProposalHandler {
		return func(ctx sdk.Context, gov Governance, proposal Proposal) sdk.Error {
			logger.Info(action, "mint", gov.TokenMint, "proposal", proposal.Id, "title", proposal.Title)
			return nil
		}
	}
	return Executors{
		ParameterChange: logOnly("executing parameter change proposal"),
		TreasurySpend:   logOnly("executing treasury spend proposal"),
		ProtocolUpgrade: logOnly("executing protocol upgrade proposal"),
		General:         logOnly("executing general proposal"),
	}
}

func (e Executors) handlerFor(pt ProposalType) (ProposalHandler, sdk.Error) {
	var h ProposalHandler
	switch pt {
	case ParameterChange:
		h = e.ParameterChange
	case TreasurySpend:
		h = e.TreasurySpend
	case ProtocolUpgrade:
		h = e.ProtocolUpgrade
	case General:
		h = e.General
	default:
		return nil, ErrInvalidProposalType(pt)
	}
	if h == nil {
		return nil, sdk.ErrInternal("no handler registered for proposal type " + pt.String())
	}
	return h, nil
}
