package app

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/iavl"

	"github.com/uachain/node/common"
)

// StoreInfo describes the committed iavl tree behind one substore.
type StoreInfo struct {
	Name    string
	Version int64
	Size    int64
	Hash    []byte
}

// StoreEntry is one raw key/value pair of a substore.
type StoreEntry struct {
	Key   []byte
	Value []byte
}

func (app *UAChainApp) immutableTree(key sdk.StoreKey) (*iavl.ImmutableTree, error) {
	treeStore, ok := app.cms.GetCommitStore(key).(store.TreeStore)
	if !ok {
		return nil, fmt.Errorf("store %s is not backed by an iavl tree", key.Name())
	}
	return treeStore.GetImmutableTree(), nil
}

// InspectStores reports the iavl tree of every mounted substore.
func (app *UAChainApp) InspectStores() ([]StoreInfo, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	keys := common.StoreKeys()
	infos := make([]StoreInfo, 0, len(keys))
	for _, key := range keys {
		tree, err := app.immutableTree(key)
		if err != nil {
			return nil, err
		}
		infos = append(infos, StoreInfo{
			Name:    key.Name(),
			Version: tree.Version(),
			Size:    tree.Size(),
			Hash:    tree.Hash(),
		})
	}
	return infos, nil
}

// DumpStore walks the iavl tree of the named substore in key order, stopping after limit entries.
func (app *UAChainApp) DumpStore(name string, limit int) ([]StoreEntry, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	for _, key := range common.StoreKeys() {
		if key.Name() != name {
			continue
		}
		tree, err := app.immutableTree(key)
		if err != nil {
			return nil, err
		}
		var entries []StoreEntry
		tree.Iterate(func(k []byte, v []byte) bool {
			entries = append(entries, StoreEntry{Key: k, Value: v})
			return limit > 0 && len(entries) >= limit
		})
		return entries, nil
	}
	return nil, fmt.Errorf("unknown store %s", name)
}
