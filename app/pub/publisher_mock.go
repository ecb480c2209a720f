package pub

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type MockLedgerEventPublisher struct {
	BlockEventsPublished []*BlockEvents

	Lock             *sync.Mutex // as mock publisher is only used in testing, its no harm to have this granularity Lock
	MessagePublished uint32      // atomic integer used to determine the published messages
}

func (publisher *MockLedgerEventPublisher) publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64) {
	publisher.Lock.Lock()
	defer publisher.Lock.Unlock()

	switch tpe {
	case ledgerEventsTpe:
		publisher.BlockEventsPublished = append(publisher.BlockEventsPublished, msg.(*BlockEvents))
	default:
		panic(fmt.Errorf("does not support type %s", tpe.String()))
	}

	atomic.AddUint32(&publisher.MessagePublished, 1)
}

func (publisher *MockLedgerEventPublisher) Stop() {
	publisher.Lock.Lock()
	defer publisher.Lock.Unlock()

	publisher.BlockEventsPublished = make([]*BlockEvents, 0)
}

func NewMockLedgerEventPublisher() *MockLedgerEventPublisher {
	return &MockLedgerEventPublisher{
		make([]*BlockEvents, 0),
		&sync.Mutex{},
		0,
	}
}
