package common

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	MainStoreName       = "main"
	AccountStoreName    = "acc"
	GovernanceStoreName = "gov"
	StakingStoreName    = "staking"
)

var (
	// keys to access the substores
	MainStoreKey       = sdk.NewKVStoreKey(MainStoreName)
	AccountStoreKey    = sdk.NewKVStoreKey(AccountStoreName)
	GovernanceStoreKey = sdk.NewKVStoreKey(GovernanceStoreName)
	StakingStoreKey    = sdk.NewKVStoreKey(StakingStoreName)
)

// StoreKeys returns every substore key the node mounts.
func StoreKeys() []*sdk.KVStoreKey {
	return []*sdk.KVStoreKey{MainStoreKey, AccountStoreKey, GovernanceStoreKey, StakingStoreKey}
}
