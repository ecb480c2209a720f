package testutils

import (
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/common"
)

const TestChainID = "uachain-test"

// SetupMultiStoreForUnitTest mounts every node substore on a fresh in-memory db.
func SetupMultiStoreForUnitTest() sdk.CommitMultiStore {
	_, ms := SetupMultiStoreWithDBForUnitTest()
	return ms
}

func SetupMultiStoreWithDBForUnitTest() (dbm.DB, sdk.CommitMultiStore) {
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	for _, key := range common.StoreKeys() {
		ms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	}
	if err := ms.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return db, ms
}

// NewContext builds a deliver-mode context whose block time is blockTime (unix seconds).
func NewContext(ms sdk.MultiStore, height int64, blockTime int64) sdk.Context {
	header := abci.Header{ChainID: TestChainID, Height: height, Time: time.Unix(blockTime, 0)}
	return sdk.NewContext(ms, header, sdk.RunTxModeDeliver, log.NewNopLogger())
}

// AtTime returns ctx with its block time moved to blockTime (unix seconds).
func AtTime(ctx sdk.Context, blockTime int64) sdk.Context {
	header := ctx.BlockHeader()
	header.Time = time.Unix(blockTime, 0)
	return ctx.WithBlockHeader(header)
}

// generate a priv key and return it with its address
func PrivAndAddr() (crypto.PrivKey, sdk.AccAddress) {
	priv := secp256k1.GenPrivKey()
	addr := sdk.AccAddress(priv.PubKey().Address())
	return priv, addr
}

// NewAddrs returns n fresh account addresses.
func NewAddrs(n int) []sdk.AccAddress {
	addrs := make([]sdk.AccAddress, 0, n)
	for i := 0; i < n; i++ {
		_, addr := PrivAndAddr()
		addrs = append(addrs, addr)
	}
	return addrs
}
