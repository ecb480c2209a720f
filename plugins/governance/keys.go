package governance

import (
	"encoding/binary"
)

const Int64Size = 8

var (
	GovernanceKey = []byte{0x01}
	ProposalKey   = []byte{0x02}
	VoteKey       = []byte{0x03}
)

func GetGovernanceKey(mint string) []byte {
	return append(append([]byte{}, GovernanceKey...), []byte(mint)...)
}

// GetProposalKey addresses a proposal by (governance, counter value).
func GetProposalKey(mint string, id uint64) []byte {
	key := GetProposalQueueKey(mint)
	return appendUint64(key, id)
}

// GetProposalQueueKey prefixes every proposal of one governance instance, ordered by id.
func GetProposalQueueKey(mint string) []byte {
	return mintScopedKey(ProposalKey, mint)
}

// GetVoteKey addresses the single vote record of voter on a proposal.
func GetVoteKey(mint string, id uint64, voter []byte) []byte {
	key := GetVoteQueueKey(mint, id)
	return append(key, voter...)
}

func GetVoteQueueKey(mint string, id uint64) []byte {
	key := mintScopedKey(VoteKey, mint)
	return appendUint64(key, id)
}

func mintScopedKey(prefix []byte, mint string) []byte {
	key := make([]byte, 0, len(prefix)+1+len(mint)+Int64Size)
	key = append(key, prefix...)
	key = append(key, byte(len(mint)))
	return append(key, []byte(mint)...)
}

func appendUint64(key []byte, v uint64) []byte {
	var bz [Int64Size]byte
	binary.BigEndian.PutUint64(bz[:], v)
	return append(key, bz[:]...)
}
