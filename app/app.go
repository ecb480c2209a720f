package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/app/config"
	"github.com/uachain/node/app/pub"
	"github.com/uachain/node/common"
	"github.com/uachain/node/common/account"
	"github.com/uachain/node/common/types"
	"github.com/uachain/node/plugins/governance"
	"github.com/uachain/node/plugins/staking"
	"github.com/uachain/node/wire"
)

const (
	appName = "UAChain"

	FundMsgRoute = "account"
	FundMsgType  = "fund"
)

var lastBlockTimeKey = []byte("lastBlockTime")

// Clock supplies wall time to the app; block times never go backwards even if it does.
type Clock func() time.Time

// UAChainApp is the UA token ledger: governance and staking plugins mounted on
// one persistent multistore. Every delivery is a block: it either commits as a
// whole or leaves the ledger untouched.
type UAChainApp struct {
	logger log.Logger
	cdc    *wire.Codec

	db            dbm.DB
	cms           sdk.CommitMultiStore
	router        baseapp.Router
	queryHandlers map[string]types.AbciQueryHandler

	AccountKeeper account.Keeper
	GovKeeper     governance.Keeper
	StakingKeeper staking.Keeper

	clock         Clock
	lastBlockTime int64

	publicationConfig *config.PublicationConfig
	metrics           *pub.Metrics

	mtx sync.Mutex
}

var _ types.ChainApp = (*UAChainApp)(nil)

// NewUAChainApp loads the latest committed state from db.
func NewUAChainApp(logger log.Logger, db dbm.DB, cfg *config.UAChainConfig) (*UAChainApp, error) {
	var cdc = MakeCodec()

	app := &UAChainApp{
		logger:            logger.With("module", "app"),
		cdc:               cdc,
		db:                db,
		cms:               store.NewCommitMultiStore(db),
		router:            baseapp.NewRouter(),
		queryHandlers:     make(map[string]types.AbciQueryHandler),
		clock:             time.Now,
		publicationConfig: cfg.Publication,
		metrics:           pub.NopMetrics(),
	}

	app.AccountKeeper = account.NewKeeper(cdc, common.AccountStoreKey)
	app.GovKeeper = governance.NewKeeper(cdc, common.GovernanceStoreKey, app.AccountKeeper)
	app.GovKeeper.SetDefaultVotingPeriodDays(cfg.Governance.DefaultVotingPeriodDays)
	app.StakingKeeper = staking.NewKeeper(cdc, common.StakingStoreKey, app.AccountKeeper)

	app.initPlugins()

	for _, key := range common.StoreKeys() {
		app.cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, nil)
	}
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, err
	}
	app.lastBlockTime = app.loadLastBlockTime()
	app.logger.Info("loaded ledger", "height", app.LastBlockHeight(), "blockTime", app.lastBlockTime)
	return app, nil
}

func (app *UAChainApp) initPlugins() {
	governance.InitPlugin(app, app.GovKeeper)
	staking.InitPlugin(app, app.StakingKeeper)
}

// MakeCodec creates the app codec with every plugin msg registered.
func MakeCodec() *wire.Codec {
	var cdc = wire.NewCodec()

	wire.RegisterCrypto(cdc) // Register crypto.
	sdk.RegisterCodec(cdc)   // Register Msgs
	governance.RegisterWire(cdc)
	staking.RegisterWire(cdc)
	return cdc
}

// SetClock replaces the wall clock, mostly for tests.
func (app *UAChainApp) SetClock(clock Clock) {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	app.clock = clock
}

func (app *UAChainApp) SetMetrics(metrics *pub.Metrics) {
	app.metrics = metrics
}

func (app *UAChainApp) GetCodec() *wire.Codec     { return app.cdc }
func (app *UAChainApp) GetRouter() baseapp.Router { return app.router }
func (app *UAChainApp) Logger() log.Logger        { return app.logger }

func (app *UAChainApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

func (app *UAChainApp) LastBlockTime() int64 {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	return app.lastBlockTime
}

func (app *UAChainApp) RegisterQueryHandler(prefix string, handler types.AbciQueryHandler) {
	if _, ok := app.queryHandlers[prefix]; ok {
		panic(fmt.Errorf("registerQueryHandler: prefix `%s` is already registered", prefix))
	} else {
		app.queryHandlers[prefix] = handler
	}
}

// nextBlockTime must be called with mtx held.
func (app *UAChainApp) nextBlockTime() int64 {
	t := app.clock().Unix()
	if t < app.lastBlockTime {
		return app.lastBlockTime
	}
	return t
}

func (app *UAChainApp) loadLastBlockTime() int64 {
	bz := app.cms.GetKVStore(common.MainStoreKey).Get(lastBlockTimeKey)
	if bz == nil {
		return 0
	}
	var t int64
	app.cdc.MustUnmarshalBinaryBare(bz, &t)
	return t
}

// GetContextForQuery returns a read-only view of the last committed state whose
// block time is the current clock, so pending rewards accrue between deliveries.
func (app *UAChainApp) GetContextForQuery() sdk.Context {
	app.mtx.Lock()
	defer app.mtx.Unlock()
	header := abci.Header{
		ChainID: appName,
		Height:  app.LastBlockHeight(),
		Time:    time.Unix(app.nextBlockTime(), 0),
	}
	return sdk.NewContext(app.cms.CacheMultiStore(), header, sdk.RunTxModeCheck, app.logger)
}

func (app *UAChainApp) Query(req abci.RequestQuery) (res abci.ResponseQuery) {
	path := splitPath(req.Path)
	if len(path) == 0 {
		return *types.QueryErr(sdk.CodeUnknownRequest, "no query path provided")
	}
	if handler, ok := app.queryHandlers[path[0]]; ok {
		if res := handler(app, req, path); res != nil {
			res.Height = app.LastBlockHeight()
			return *res
		}
	}
	return *types.QueryErr(sdk.CodeUnknownRequest, "unknown query path %s", req.Path)
}

// splitPath splits a string path using the delimiter '/'.
// i.e. "this/is/funny" becomes []string{"this", "is", "funny"}
func splitPath(requestPath string) (path []string) {
	path = strings.Split(strings.Trim(requestPath, "/"), "/")
	if len(path) == 1 && path[0] == "" {
		return nil
	}
	return path
}

// DeliverMsg delivers msg in a block of its own.
func (app *UAChainApp) DeliverMsg(msg sdk.Msg) sdk.Result {
	return app.DeliverMsgs(msg)[0]
}

// DeliverMsgs delivers msgs in order within one block. Each msg is applied
// atomically: a failing msg leaves no trace while the others still commit.
func (app *UAChainApp) DeliverMsgs(msgs ...sdk.Msg) []sdk.Result {
	ops := make([]blockOp, len(msgs))
	for i, msg := range msgs {
		m := msg
		ops[i] = func(ctx sdk.Context) (sdk.Result, *pub.LedgerEvent) {
			res := app.runMsg(ctx, m)
			if !res.IsOK() {
				return res, nil
			}
			event := pub.NewLedgerEvent(m, res.Tags)
			return res, &event
		}
	}
	return app.runBlock(ops)
}

// FundAccount credits coins to addr, standing in for the external token program's mint.
func (app *UAChainApp) FundAccount(addr sdk.AccAddress, coins sdk.Coins) sdk.Result {
	return app.runBlock([]blockOp{func(ctx sdk.Context) (sdk.Result, *pub.LedgerEvent) {
		_, tags, err := app.AccountKeeper.AddCoins(ctx, addr, coins)
		if err != nil {
			return err.Result(), nil
		}
		event := pub.LedgerEvent{
			Route:   FundMsgRoute,
			MsgType: FundMsgType,
			Signer:  addr.String(),
			Attrs:   map[string]string{"recipient": addr.String(), "amount": coins.String()},
		}
		return sdk.Result{Tags: tags}, &event
	}})[0]
}

type blockOp func(ctx sdk.Context) (sdk.Result, *pub.LedgerEvent)

func (app *UAChainApp) runBlock(ops []blockOp) []sdk.Result {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	height := app.LastBlockHeight() + 1
	blockTime := app.nextBlockTime()
	header := abci.Header{ChainID: appName, Height: height, Time: time.Unix(blockTime, 0)}

	results := make([]sdk.Result, len(ops))
	events := make([]pub.LedgerEvent, 0, len(ops))
	for i, op := range ops {
		msCache := app.cms.CacheMultiStore()
		ctx := sdk.NewContext(msCache, header, sdk.RunTxModeDeliver, app.logger)
		res, event := app.runSafely(ctx, op)
		results[i] = res
		if !res.IsOK() {
			app.logger.Debug("delivery failed", "height", height, "code", res.Code, "log", res.Log)
			continue
		}
		msCache.Write()
		if event != nil {
			events = append(events, *event)
		}
	}

	if len(events) == 0 {
		return results
	}

	app.cms.GetKVStore(common.MainStoreKey).Set(lastBlockTimeKey, app.cdc.MustMarshalBinaryBare(blockTime))
	commitID := app.cms.Commit()
	app.lastBlockTime = blockTime
	app.logger.Info("committed block", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash), "msgs", len(events))

	app.publish(pub.NewBlockEvents(commitID.Version, blockTime, events))
	return results
}

// runSafely turns a handler panic into an internal error so the cached writes are discarded.
func (app *UAChainApp) runSafely(ctx sdk.Context, op blockOp) (res sdk.Result, event *pub.LedgerEvent) {
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("delivery panicked", "err", r)
			res = sdk.ErrInternal(fmt.Sprintf("recovered: %v", r)).Result()
			event = nil
		}
	}()
	return op(ctx)
}

func (app *UAChainApp) runMsg(ctx sdk.Context, msg sdk.Msg) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	handler := app.router.Route(msg.Route())
	if handler == nil {
		return sdk.ErrUnknownRequest("unrecognized msg route " + msg.Route()).Result()
	}
	return handler(ctx, msg)
}

func (app *UAChainApp) publish(events pub.BlockEvents) {
	if !pub.IsLive || app.publicationConfig == nil || !app.publicationConfig.ShouldPublishAny() {
		return
	}
	select {
	case pub.ToPublishCh <- events:
	default:
		app.metrics.NumDroppedBlocks.Add(1)
		app.logger.Error("publication queue is full, dropping ledger events", "height", events.Height)
	}
}

// Close releases the underlying database.
func (app *UAChainApp) Close() {
	app.db.Close()
}
