package main

import (
	"fmt"

	"github.com/pkg/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/uachain/node/app"
	"github.com/uachain/node/app/config"
	"github.com/uachain/node/app/pub"
	"github.com/uachain/node/plugins/api"
)

const appDBName = "application"

func openDB(home string) (dbm.DB, error) {
	dataDir := config.DataDir(home)
	if err := cmn.EnsureDir(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir failed, err=%s", err.Error())
	}
	switch dbm.DBBackendType(ctx.Config.DBBackend) {
	case dbm.MemDBBackend:
		return dbm.NewMemDB(), nil
	default:
		db, err := dbm.NewGoLevelDB(appDBName, dataDir)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open ledger db in %s", dataDir)
		}
		return db, nil
	}
}

// openApp loads the ledger under the configured home and starts the event
// publisher when the publication config asks for one. The returned func
// stops publication and closes the db.
func openApp() (*app.UAChainApp, func(), error) {
	cfg := ctx.Config
	db, err := openDB(cfg.HomeDir)
	if err != nil {
		return nil, nil, err
	}
	node, err := app.NewUAChainApp(ctx.Logger, db, cfg)
	if err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "failed to load ledger")
	}

	stopPub := func() {}
	if cfg.Publication.ShouldPublishAny() {
		metrics := pub.PrometheusMetrics()
		node.SetMetrics(metrics)
		if stopPub, err = app.StartPublication(cfg, ctx.Logger, metrics); err != nil {
			node.Close()
			return nil, nil, errors.Wrap(err, "failed to start publication")
		}
	}
	return node, func() {
		stopPub()
		node.Close()
	}, nil
}

func openQuerier() (api.Querier, func(), error) {
	return openApp()
}
