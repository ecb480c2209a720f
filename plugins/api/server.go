package api

import (
	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"go.uber.org/ratelimit"

	"github.com/uachain/node/app/config"
)

const defaultMaxPostSize int64 = 1024 * 1024 * 0.5 // ~500KB

// Querier is the read side of the node the REST server sits on.
type Querier interface {
	Query(req abci.RequestQuery) abci.ResponseQuery
	LastBlockHeight() int64
}

type server struct {
	router *mux.Router

	// settings
	maxPostSize int64

	// handler dependencies
	node    Querier
	cache   *lru.Cache
	limiter ratelimit.Limiter
	logger  log.Logger
}

// newServer provides a new server structure.
func newServer(node Querier, cfg *config.APIConfig, logger log.Logger) (*server, error) {
	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create query cache")
	}
	maxPostSize := cfg.MaxRequestBytes
	if maxPostSize <= 0 {
		maxPostSize = defaultMaxPostSize
	}
	s := &server{
		router:      mux.NewRouter(),
		maxPostSize: maxPostSize,
		node:        node,
		cache:       cache,
		logger:      logger,
	}
	if cfg.RequestsPerSec > 0 {
		s.limiter = ratelimit.New(cfg.RequestsPerSec)
	} else {
		s.limiter = ratelimit.NewUnlimited()
	}
	return s, nil
}

// NewHandler builds the REST router over node.
func NewHandler(node Querier, cfg *config.APIConfig, logger log.Logger) (*mux.Router, error) {
	s, err := newServer(node, cfg, logger)
	if err != nil {
		return nil, err
	}
	return s.bindRoutes().router, nil
}
