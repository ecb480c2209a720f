package pub

import (
	"fmt"
	"time"

	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/app/config"
)

const (
	// a slow consumer must never stall block delivery, the app drops events once the channel is full
	PublicationChannelSize = 1000
)

var (
	Logger      tmlog.Logger
	Cfg         *config.PublicationConfig
	ToPublishCh chan BlockEvents
	IsLive      bool
)

type LedgerEventPublisher interface {
	publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64)
	Stop()
}

// Setup prepares the package level channel and config shared by the app and the publisher.
func Setup(logger tmlog.Logger, cfg *config.PublicationConfig) {
	Logger = logger
	Cfg = cfg
	size := cfg.PublicationChannelSize
	if size <= 0 {
		size = PublicationChannelSize
	}
	ToPublishCh = make(chan BlockEvents, size)
	IsLive = true
}

func Publish(
	publisher LedgerEventPublisher,
	metrics *Metrics,
	logger tmlog.Logger,
	toPublishCh <-chan BlockEvents) {
	var lastPublishedTime time.Time
	for blockEvents := range toPublishCh {
		logger.Debug("publisher queue status", "size", len(toPublishCh))
		if metrics != nil {
			metrics.PublicationQueueSize.Set(float64(len(toPublishCh)))
		}

		events := blockEvents
		publishBlockTime := Timer(logger, fmt.Sprintf("publish ledger events, height=%d", events.Height), func() {
			if len(events.Events) > 0 {
				publisher.publish(&events, ledgerEventsTpe, events.Height, events.Timestamp)
			}
		})

		if metrics != nil {
			metrics.NumEvents.Add(float64(len(events.Events)))
			metrics.PublicationHeight.Set(float64(events.Height))
			blockInterval := time.Since(lastPublishedTime)
			lastPublishedTime = time.Now()
			metrics.PublicationBlockIntervalMs.Set(float64(blockInterval.Nanoseconds() / int64(time.Millisecond)))
			metrics.PublishBlockTimeMs.Set(float64(publishBlockTime))
		}
	}
}

func Stop(publisher LedgerEventPublisher) {
	Shutdown(publisher, nil)
}

// Shutdown closes the queue and, when published is non-nil, waits for the
// Publish loop to signal on it before stopping publisher.
func Shutdown(publisher LedgerEventPublisher, published <-chan struct{}) {
	if IsLive == false {
		Logger.Error("publication module has already been stopped")
		return
	}

	IsLive = false

	close(ToPublishCh)
	if published != nil {
		<-published
	}

	publisher.Stop()
}

func Timer(logger tmlog.Logger, description string, op func()) (durationMs int64) {
	start := time.Now()
	op()
	durationMs = time.Since(start).Nanoseconds() / int64(time.Millisecond)
	logger.Debug(description, "durationMs", durationMs)
	return durationMs
}
