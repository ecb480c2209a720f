package app

import (
	"fmt"
	"path/filepath"

	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/app/config"
	"github.com/uachain/node/app/pub"
	ualog "github.com/uachain/node/common/log"
)

const defaultLogLevel = "info"

// NewLogger builds the process logger from the log section of the app config
// and installs it as the package logger of common/log.
func NewLogger(cfg *config.UAChainConfig) (log.Logger, error) {
	var logger log.Logger
	if cfg.Log.LogToConsole {
		logger = ualog.NewConsoleLogger()
	} else {
		logFilePath := cfg.Log.LogFilePath
		if !filepath.IsAbs(logFilePath) {
			logFilePath = filepath.Join(cfg.HomeDir, logFilePath)
		}
		if err := cmn.EnsureDir(filepath.Dir(logFilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log dir failed, err=%s", err.Error())
		}
		logger = ualog.NewFileLogger(logFilePath, cfg.Log.LogMaxSize, cfg.Log.LogMaxAge)
	}

	logger, err := tmflags.ParseLogLevel(cfg.Log.Level, logger, defaultLogLevel)
	if err != nil {
		return nil, err
	}
	logger = logger.With("module", "main")
	ualog.InitLogger(logger)
	return logger, nil
}

// StartPublication starts the ledger event publisher selected by the publication
// config. The returned stop function publishes what is still queued before it returns.
func StartPublication(cfg *config.UAChainConfig, logger log.Logger, metrics *pub.Metrics) (stop func(), err error) {
	pubCfg := cfg.Publication
	if !pubCfg.ShouldPublishAny() {
		return func() {}, nil
	}

	pubLogger := logger.With("module", "pub")
	var publisher pub.LedgerEventPublisher
	if pubCfg.PublishLocal {
		publisher = pub.NewLocalLedgerEventPublisher(config.DataDir(cfg.HomeDir), pubLogger, pubCfg)
	} else {
		if publisher, err = pub.NewKafkaLedgerEventPublisher(pubLogger, pubCfg); err != nil {
			return nil, err
		}
	}

	pub.Setup(pubLogger, pubCfg)
	published := make(chan struct{})
	go func() {
		defer close(published)
		pub.Publish(publisher, metrics, pubLogger, pub.ToPublishCh)
	}()
	return func() { pub.Shutdown(publisher, published) }, nil
}
