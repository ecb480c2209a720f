package staking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	app "github.com/uachain/node/common/types"
)

// InitPlugin initializes the plugin.
func InitPlugin(appp app.ChainApp, keeper Keeper) {
	for route, handler := range Routes(keeper) {
		appp.GetRouter().AddRoute(route, handler)
	}
	appp.RegisterQueryHandler(AbciQueryPrefix, createAbciQueryHandler(keeper))
}

// Routes exports staking message routes
func Routes(keeper Keeper) map[string]sdk.Handler {
	routes := make(map[string]sdk.Handler)
	routes[MsgRoute] = NewHandler(keeper)
	return routes
}
