package pub

import (
	"io/ioutil"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uachain/node/app/config"
)

func TestPublishSkipsEmptyBlocks(t *testing.T) {
	mock := NewMockLedgerEventPublisher()
	ch := make(chan BlockEvents, 3)
	ch <- sampleBlockEvents()
	ch <- NewBlockEvents(43, 1600000005, nil)
	ch <- sampleBlockEvents()
	close(ch)

	Publish(mock, NopMetrics(), Logger, ch)

	require.Equal(t, uint32(2), atomic.LoadUint32(&mock.MessagePublished))
	require.Len(t, mock.BlockEventsPublished, 2)
	require.Equal(t, int64(42), mock.BlockEventsPublished[0].Height)
}

func TestSetupAndStop(t *testing.T) {
	cfg := *config.DefaultUAChainConfig().Publication
	cfg.PublicationChannelSize = 5
	Setup(Logger, &cfg)
	require.True(t, IsLive)
	require.Equal(t, 5, cap(ToPublishCh))

	mock := NewMockLedgerEventPublisher()
	Stop(mock)
	require.False(t, IsLive)
	_, open := <-ToPublishCh
	require.False(t, open)
}

func TestLocalPublisherWritesJsonLines(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledgerevents")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	local := NewLocalLedgerEventPublisher(dir, Logger, config.DefaultUAChainConfig().Publication)
	events := sampleBlockEvents()
	local.publish(&events, ledgerEventsTpe, events.Height, events.Timestamp)
	local.Stop()

	bz, err := ioutil.ReadFile(LocalPublicationPath(dir))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(bz)), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"height":42`)
	require.Contains(t, lines[0], `"gov.mint":"UA"`)
}
