package api

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tidwall/gjson"

	"github.com/uachain/node/app"
	"github.com/uachain/node/app/config"
	"github.com/uachain/node/common/testutils"
	"github.com/uachain/node/plugins/governance"
	"github.com/uachain/node/plugins/staking"
)

const testMint = "UA"

type countingQuerier struct {
	Querier
	queries int
}

func (q *countingQuerier) Query(req types.RequestQuery) types.ResponseQuery {
	q.queries++
	return q.Querier.Query(req)
}

func setupServer(t *testing.T) (*httptest.Server, *app.UAChainApp, *countingQuerier, []sdk.AccAddress) {
	node, err := app.NewUAChainApp(log.NewNopLogger(), dbm.NewMemDB(), config.DefaultUAChainConfig())
	require.NoError(t, err)
	node.SetClock(func() time.Time { return time.Unix(1700000000, 0) })

	addrs := testutils.NewAddrs(2)
	require.True(t, node.FundAccount(addrs[1], sdk.Coins{sdk.NewCoin(testMint, 5000)}).IsOK())
	results := node.DeliverMsgs(
		governance.NewInitGovernanceMsg(addrs[0], testMint, 10, 100, 7),
		governance.NewCreateProposalMsg(addrs[1], testMint, "first", "", governance.General),
		governance.NewCreateProposalMsg(addrs[1], testMint, "second", "", governance.TreasurySpend),
		governance.NewVoteMsg(addrs[1], testMint, 0, governance.VoteYes),
		staking.NewInitPoolMsg(addrs[0], testMint, 7, 0),
		staking.NewStakeMsg(addrs[1], testMint, 1000, 90),
	)
	for _, res := range results {
		require.True(t, res.IsOK(), res.Log)
	}

	querier := &countingQuerier{Querier: node}
	handler, err := NewHandler(querier, config.DefaultUAChainConfig().API, log.NewNopLogger())
	require.NoError(t, err)
	return httptest.NewServer(handler), node, querier, addrs
}

func get(t *testing.T, srv *httptest.Server, path string) (int, gjson.Result, http.Header) {
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, gjson.ParseBytes(body), resp.Header
}

func TestGovernanceEndpoints(t *testing.T) {
	srv, node, _, addrs := setupServer(t)
	defer srv.Close()

	status, body, header := get(t, srv, prefix+"/governances/"+testMint)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "2", body.Get("proposal_count").String())
	require.Equal(t, fmt.Sprint(node.LastBlockHeight()), header.Get(HeightHeader))

	status, body, _ = get(t, srv, prefix+"/governances/"+testMint+"/quorum")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "1000000", body.String())

	status, body, _ = get(t, srv, prefix+"/governances/"+testMint+"/proposals")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Array(), 2)
	require.Equal(t, "second", body.Get("1.title").String())

	status, body, _ = get(t, srv, prefix+"/governances/"+testMint+"/proposals?offset=1&limit=5")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Array(), 1)
	require.Equal(t, "1", body.Get("0.id").String())

	status, body, _ = get(t, srv, prefix+"/governances/"+testMint+"/proposals/0/votes/"+addrs[1].String())
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "5000", body.Get("voting_power").String())

	status, _, _ = get(t, srv, prefix+"/governances/"+testMint+"/proposals/9")
	require.Equal(t, http.StatusNotFound, status)

	status, body, _ = get(t, srv, prefix+"/governances/"+testMint+"/proposals?limit=5000")
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, body.Get("message").String())
}

func TestStakingEndpoints(t *testing.T) {
	srv, _, _, addrs := setupServer(t)
	defer srv.Close()

	status, body, _ := get(t, srv, prefix+"/pools/"+testMint)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "1000", body.Get("pool.total_staked").String())

	status, body, _ = get(t, srv, prefix+"/pools/"+testMint+"/stakes/"+addrs[1].String())
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "90", body.Get("lockup_days").String())

	status, _, _ = get(t, srv, prefix+"/pools/"+testMint+"/rewards/"+addrs[1].String())
	require.Equal(t, http.StatusOK, status)

	status, _, _ = get(t, srv, prefix+"/pools/NOPE")
	require.Equal(t, http.StatusNotFound, status)
}

func TestResponsesAreCachedPerHeight(t *testing.T) {
	srv, node, querier, addrs := setupServer(t)
	defer srv.Close()

	path := prefix + "/governances/" + testMint
	get(t, srv, path)
	get(t, srv, path)
	require.Equal(t, 1, querier.queries)

	// rewards skip the cache
	get(t, srv, prefix+"/pools/"+testMint+"/rewards/"+addrs[1].String())
	get(t, srv, prefix+"/pools/"+testMint+"/rewards/"+addrs[1].String())
	require.Equal(t, 3, querier.queries)

	require.True(t, node.DeliverMsg(governance.NewCreateProposalMsg(addrs[1], testMint, "third", "", governance.General)).IsOK())
	_, body, _ := get(t, srv, path)
	require.Equal(t, 4, querier.queries)
	require.Equal(t, "3", body.Get("proposal_count").String())
}

func TestUnknownEndpoint(t *testing.T) {
	srv, _, _, _ := setupServer(t)
	defer srv.Close()

	status, body, _ := get(t, srv, "/api/v2/whatever")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no such endpoint", body.Get("message").String())

	status, _, _ = get(t, srv, "/version")
	require.Equal(t, http.StatusOK, status)
}
