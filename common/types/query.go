package types

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/wire"
)

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

// QueryErr builds a failed query response.
func QueryErr(code sdk.CodeType, format string, args ...interface{}) *abci.ResponseQuery {
	return &abci.ResponseQuery{
		Code: uint32(code),
		Log:  fmt.Sprintf(format, args...),
	}
}

// QueryJSON answers a query with the indented JSON encoding of v.
func QueryJSON(cdc *wire.Codec, v interface{}) *abci.ResponseQuery {
	bz, err := wire.MarshalJSONIndent(cdc, v)
	if err != nil {
		return QueryErr(sdk.CodeInternal, err.Error())
	}
	return &abci.ResponseQuery{
		Code:  uint32(sdk.ABCICodeOK),
		Value: bz,
	}
}

// QueryRaw answers a query with bz as is.
func QueryRaw(bz []byte) *abci.ResponseQuery {
	return &abci.ResponseQuery{
		Code:  uint32(sdk.ABCICodeOK),
		Value: bz,
	}
}

// ParsePagination reads optional <offset> and <limit> path args.
// limit defaults to DefaultQueryLimit and may not exceed MaxQueryLimit.
func ParsePagination(args []string) (offset uint64, limit int, err error) {
	limit = DefaultQueryLimit
	if len(args) > 0 && args[0] != "" {
		offset, err = strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse offset %q", args[0])
		}
	}
	if len(args) > 1 && args[1] != "" {
		limit, err = strconv.Atoi(args[1])
		if err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("unable to parse limit %q", args[1])
		}
		if limit > MaxQueryLimit {
			return 0, 0, fmt.Errorf("limit %d exceeds %d", limit, MaxQueryLimit)
		}
	}
	return offset, limit, nil
}
