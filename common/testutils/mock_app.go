package testutils

import (
	"strings"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/common/types"
	"github.com/uachain/node/wire"
)

// MockApp is a ChainApp serving plugin routes and queries against a fixed context.
type MockApp struct {
	Ctx sdk.Context

	cdc      *wire.Codec
	router   baseapp.Router
	handlers map[string]types.AbciQueryHandler
}

var _ types.ChainApp = (*MockApp)(nil)

func NewMockApp(ctx sdk.Context, cdc *wire.Codec) *MockApp {
	return &MockApp{
		Ctx:      ctx,
		cdc:      cdc,
		router:   baseapp.NewRouter(),
		handlers: make(map[string]types.AbciQueryHandler),
	}
}

func (app *MockApp) GetCodec() *wire.Codec           { return app.cdc }
func (app *MockApp) GetRouter() baseapp.Router       { return app.router }
func (app *MockApp) GetContextForQuery() sdk.Context { return app.Ctx }

func (app *MockApp) RegisterQueryHandler(prefix string, handler types.AbciQueryHandler) {
	app.handlers[prefix] = handler
}

func (app *MockApp) Query(req abci.RequestQuery) (res abci.ResponseQuery) {
	path := strings.Split(strings.Trim(req.Path, "/"), "/")
	if handler, ok := app.handlers[path[0]]; ok {
		if res := handler(app, req, path); res != nil {
			return *res
		}
	}
	return abci.ResponseQuery{Code: uint32(sdk.CodeUnknownRequest), Log: "unknown query path " + req.Path}
}

// Deliver routes msg to its plugin handler.
func (app *MockApp) Deliver(msg sdk.Msg) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	handler := app.router.Route(msg.Route())
	if handler == nil {
		return sdk.ErrUnknownRequest("unrecognized route " + msg.Route()).Result()
	}
	return handler(app.Ctx, msg)
}
