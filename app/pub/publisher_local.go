package pub

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/natefinch/lumberjack"

	tmLogger "github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/app/config"
)

// Publish ledger events to local ledgerevents dir in uachaind data dir
// each message will be in json format one line in file
// file can be compressed and auto-rotated
type LocalLedgerEventPublisher struct {
	producer   *log.Logger
	fileWriter *lumberjack.Logger
	tmLogger   tmLogger.Logger
}

func (publisher *LocalLedgerEventPublisher) publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64) {
	if jsonBytes, err := json.Marshal(msg); err == nil {
		if err := publisher.producer.Output(2, fmt.Sprintln(string(jsonBytes))); err != nil {
			publisher.tmLogger.Error("failed to publish msg", "err", err, "height", height, "msg", msg.String())
		}
	} else {
		publisher.tmLogger.Error("failed to publish msg", "err", err, "height", height, "msg", msg.String())
	}
}

func (publisher *LocalLedgerEventPublisher) Stop() {
	if err := publisher.fileWriter.Close(); err != nil {
		publisher.tmLogger.Error("failed to close local publication file", "err", err)
	}
	publisher.tmLogger.Info("local publisher stopped")
}

func LocalPublicationPath(dataPath string) string {
	return filepath.Join(dataPath, "ledgerevents", "events.json")
}

func NewLocalLedgerEventPublisher(
	dataPath string,
	tmLogger tmLogger.Logger,
	cfg *config.PublicationConfig) (publisher *LocalLedgerEventPublisher) {
	fileWriter := &lumberjack.Logger{
		Filename: LocalPublicationPath(dataPath),
		MaxSize:  cfg.LocalMaxSize,
		MaxAge:   cfg.LocalMaxAge,
		Compress: true,
	}
	publisher = &LocalLedgerEventPublisher{
		log.New(fileWriter, "", 0),
		fileWriter,
		tmLogger,
	}

	return
}
