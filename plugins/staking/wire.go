package staking

import (
	"github.com/uachain/node/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(InitPoolMsg{}, "staking/InitPoolMsg", nil)
	cdc.RegisterConcrete(StakeMsg{}, "staking/StakeMsg", nil)
	cdc.RegisterConcrete(UnstakeMsg{}, "staking/UnstakeMsg", nil)
	cdc.RegisterConcrete(ClaimRewardsMsg{}, "staking/ClaimRewardsMsg", nil)
	cdc.RegisterConcrete(SetPausedMsg{}, "staking/SetPausedMsg", nil)
}
