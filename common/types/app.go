package types

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/wire"
)

// ChainApp represents the application the plugins are mounted on.
type ChainApp interface {
	GetCodec() *wire.Codec
	GetRouter() baseapp.Router
	GetContextForQuery() sdk.Context
	Query(req abci.RequestQuery) (res abci.ResponseQuery)
	RegisterQueryHandler(prefix string, handler AbciQueryHandler)
}

// AbciQueryHandler answers the query paths under its prefix. It returns nil for
// paths it does not own so the app can report them as unknown.
type AbciQueryHandler func(app ChainApp, req abci.RequestQuery, path []string) (res *abci.ResponseQuery)
