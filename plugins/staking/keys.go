package staking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto"
)

var (
	PoolKey            = []byte{0x01}
	UserStakeKey       = []byte{0x02}
	RetainedPenaltyKey = []byte{0x03}

	vaultSeed = []byte("UAStakingVault")
)

func GetPoolKey(mint string) []byte {
	return append(append([]byte{}, PoolKey...), []byte(mint)...)
}

func GetUserStakeKey(mint string, owner sdk.AccAddress) []byte {
	return append(GetUserStakeQueueKey(mint), owner...)
}

// GetUserStakeQueueKey prefixes every position of one pool.
func GetUserStakeQueueKey(mint string) []byte {
	key := make([]byte, 0, len(UserStakeKey)+1+len(mint)+sdk.AddrLen)
	key = append(key, UserStakeKey...)
	key = append(key, byte(len(mint)))
	return append(key, []byte(mint)...)
}

func GetRetainedPenaltyKey(mint string) []byte {
	return append(append([]byte{}, RetainedPenaltyKey...), []byte(mint)...)
}

// DeriveVault returns the account whose signing authority belongs to the pool of mint.
func DeriveVault(mint string, nonce uint8) sdk.AccAddress {
	seed := make([]byte, 0, len(vaultSeed)+len(mint)+1)
	seed = append(seed, vaultSeed...)
	seed = append(seed, []byte(mint)...)
	seed = append(seed, nonce)
	return sdk.AccAddress(crypto.AddressHash(seed))
}
