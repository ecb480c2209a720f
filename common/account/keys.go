package account

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	BalanceKey = []byte{0x01}
)

// GetBalanceKey addresses one (account, denom) balance.
func GetBalanceKey(addr sdk.AccAddress, denom string) []byte {
	key := GetBalanceQueueKey(addr)
	return append(key, []byte(denom)...)
}

// GetBalanceQueueKey is the prefix under which every balance of addr is stored, sorted by denom.
func GetBalanceQueueKey(addr sdk.AccAddress) []byte {
	key := make([]byte, 0, 2+len(addr))
	key = append(key, BalanceKey...)
	key = append(key, byte(len(addr)))
	return append(key, addr...)
}
