package pub

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/deathowl/go-metrics-prometheus"
	"github.com/eapache/go-resiliency/breaker"
	"github.com/linkedin/goavro"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/uachain/node/app/config"
)

const (
	KafkaBrokerSep = ";"

	breakerErrorThreshold   = 3
	breakerSuccessThreshold = 1
	breakerTimeout          = 5 * time.Second
)

type KafkaLedgerEventPublisher struct {
	ledgerEventsCodec *goavro.Codec

	topic    string
	producer sarama.SyncProducer
	breaker  *breaker.Breaker
	retries  int
}

func newSaramaConfig(cfg *config.PublicationConfig) (saramaCfg *sarama.Config, err error) {
	saramaCfg = sarama.NewConfig()
	if saramaCfg.Version, err = sarama.ParseKafkaVersion(cfg.KafkaVersion); err != nil {
		return nil, errors.Wrapf(err, "invalid kafka version %q", cfg.KafkaVersion)
	}
	if saramaCfg.ClientID, err = os.Hostname(); err != nil {
		return nil, err
	}

	saramaCfg.Producer.Partitioner = sarama.NewHashPartitioner
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Retry.Max = 20
	saramaCfg.Producer.Compression = sarama.CompressionGZIP

	// keep events of consecutive heights in order on one partition
	saramaCfg.Net.MaxOpenRequests = 1
	return saramaCfg, nil
}

func (publisher *KafkaLedgerEventPublisher) prepareMessage(
	topic string,
	msgId string,
	timeStamp int64,
	msgTpe msgType,
	message []byte) *sarama.ProducerMessage {
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Partition: -1,
		Key:       sarama.StringEncoder(fmt.Sprintf("%s_%d_%s", msgId, timeStamp, msgTpe.String())),
		Value:     sarama.ByteEncoder(message),
	}

	return msg
}

func (publisher *KafkaLedgerEventPublisher) publish(avroMessage AvroOrJsonMsg, tpe msgType, height, timestamp int64) {
	if msg, err := publisher.marshal(avroMessage, tpe); err == nil {
		kafkaMsg := publisher.prepareMessage(publisher.topic, strconv.FormatInt(height, 10), timestamp, tpe, msg)
		if partition, offset, err := publisher.publishWithRetry(kafkaMsg); err == nil {
			Logger.Info("published", "topic", publisher.topic, "msg", avroMessage.String(), "offset", offset, "partition", partition)
		} else {
			Logger.Error("failed to publish", "topic", publisher.topic, "msg", avroMessage.String(), "err", err)
		}
	} else {
		Logger.Error("failed to publish", "topic", publisher.topic, "msg", avroMessage.String(), "err", err)
	}
}

func (publisher *KafkaLedgerEventPublisher) Stop() {
	Logger.Debug("start to stop KafkaLedgerEventPublisher")
	// nil check because this method would be called when we failed to create producer
	if publisher.producer != nil {
		if err := publisher.producer.Close(); err != nil {
			Logger.Error("failed to stop producer for topic", "topic", publisher.topic, "err", err)
		}
	}
	Logger.Debug("finished stop KafkaLedgerEventPublisher")
}

func isRetriable(err error) bool {
	return err == sarama.ErrOutOfBrokers || err == breaker.ErrBreakerOpen
}

// retry on retriable errors with exponential back off, at most maxRetries times
func connectWithRetry(
	hostports []string,
	saramaCfg *sarama.Config,
	maxRetries int) (producer sarama.SyncProducer, err error) {
	backOffInSeconds := time.Duration(1)

	for attempt := 0; ; attempt++ {
		if producer, err = sarama.NewSyncProducer(hostports, saramaCfg); isRetriable(err) && attempt < maxRetries {
			backOffInSeconds <<= 1
			Logger.Error("encountered retriable error, retrying...", "after", backOffInSeconds, "err", err)
			time.Sleep(backOffInSeconds * time.Second)
		} else {
			return
		}
	}
}

// sends go through the circuit breaker so a dead cluster is not hammered by every height
func (publisher *KafkaLedgerEventPublisher) publishWithRetry(
	message *sarama.ProducerMessage) (partition int32, offset int64, err error) {
	backOffInSeconds := time.Duration(1)

	for attempt := 0; ; attempt++ {
		err = publisher.breaker.Run(func() error {
			var sendErr error
			partition, offset, sendErr = publisher.producer.SendMessage(message)
			return sendErr
		})
		if isRetriable(err) && attempt < publisher.retries {
			backOffInSeconds <<= 1
			Logger.Error("encountered retriable error, retrying...", "after", backOffInSeconds, "err", err)
			time.Sleep(backOffInSeconds * time.Second)
		} else {
			return
		}
	}
}

func (publisher *KafkaLedgerEventPublisher) marshal(msg AvroOrJsonMsg, tpe msgType) ([]byte, error) {
	native := msg.ToNativeMap()
	Logger.Debug("msgDetail", "msg", native)
	var codec *goavro.Codec
	switch tpe {
	case ledgerEventsTpe:
		codec = publisher.ledgerEventsCodec
	default:
		return nil, fmt.Errorf("doesn't support marshal kafka msg tpe: %s", tpe.String())
	}
	bb, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		Logger.Error("failed to serialize message", "msg", msg, "err", err)
	}
	return bb, err
}

func NewKafkaLedgerEventPublisher(
	logger log.Logger, cfg *config.PublicationConfig) (*KafkaLedgerEventPublisher, error) {

	sarama.Logger = saramaLogger{logger}
	codec, err := goavro.NewCodec(ledgerEventsSchema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize avro codec")
	}
	publisher := &KafkaLedgerEventPublisher{
		ledgerEventsCodec: codec,
		topic:             cfg.LedgerEventsTopic,
		breaker:           breaker.New(breakerErrorThreshold, breakerSuccessThreshold, breakerTimeout),
		retries:           cfg.MaxPublishRetries,
	}

	saramaCfg, err := newSaramaConfig(cfg)
	if err != nil {
		return nil, err
	}
	publisher.producer, err = connectWithRetry(strings.Split(cfg.LedgerEventsKafka, KafkaBrokerSep), saramaCfg, cfg.MaxPublishRetries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ledger events producer")
	}

	// we have to use the same prometheus registerer with the node metrics
	// so that we can share same host:port for prometheus daemon
	pClient := prometheusmetrics.NewPrometheusProvider(
		saramaCfg.MetricRegistry,
		"",
		"publication",
		prometheus.DefaultRegisterer,
		1*time.Second)
	go pClient.UpdatePrometheusMetrics()

	return publisher, nil
}
