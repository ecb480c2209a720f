package governance

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	app "github.com/uachain/node/common/types"
)

// InitPlugin initializes the plugin.
func InitPlugin(appp app.ChainApp, keeper Keeper) {
	// add msg handlers
	for route, handler := range Routes(keeper) {
		appp.GetRouter().AddRoute(route, handler)
	}

	// add abci handlers
	appp.RegisterQueryHandler(AbciQueryPrefix, createAbciQueryHandler(keeper))
}

// Routes exports governance message routes
func Routes(keeper Keeper) map[string]sdk.Handler {
	routes := make(map[string]sdk.Handler)
	routes[MsgRoute] = NewHandler(keeper)
	return routes
}
