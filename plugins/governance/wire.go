package governance

import (
	"github.com/uachain/node/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(InitGovernanceMsg{}, "governance/InitGovernanceMsg", nil)
	cdc.RegisterConcrete(CreateProposalMsg{}, "governance/CreateProposalMsg", nil)
	cdc.RegisterConcrete(VoteMsg{}, "governance/VoteMsg", nil)
	cdc.RegisterConcrete(FinalizeProposalMsg{}, "governance/FinalizeProposalMsg", nil)
	cdc.RegisterConcrete(ExecuteProposalMsg{}, "governance/ExecuteProposalMsg", nil)
}
