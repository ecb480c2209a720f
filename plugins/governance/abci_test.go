package governance

import (
	"encoding/json"
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/common/testutils"
	"github.com/uachain/node/wire"
)

func TestQueries(t *testing.T) {
	ctx, keeper, accKeeper := setup()
	app := testutils.NewMockApp(ctx, wire.NewCodec())
	InitPlugin(app, keeper)

	addrs := testutils.NewAddrs(2)
	fund(t, ctx, accKeeper, addrs[1], 300)
	require.True(t, app.Deliver(NewInitGovernanceMsg(addrs[0], testMint, 10, 0, 3)).IsOK())
	for i := 0; i < 3; i++ {
		res := app.Deliver(NewCreateProposalMsg(addrs[1], testMint, fmt.Sprintf("p%d", i), "", General))
		require.True(t, res.IsOK(), res.Log)
	}
	require.True(t, app.Deliver(NewVoteMsg(addrs[1], testMint, 1, VoteNo)).IsOK())

	res := app.Query(abci.RequestQuery{Path: "/gov/governance/UA"})
	require.Equal(t, uint32(sdk.ABCICodeOK), res.Code, res.Log)
	var gov Governance
	require.NoError(t, app.GetCodec().UnmarshalJSON(res.Value, &gov))
	require.Equal(t, uint64(3), gov.ProposalCount)
	require.Equal(t, uint8(3), gov.VotingPeriodDays)

	res = app.Query(abci.RequestQuery{Path: "/gov/quorum/UA"})
	require.Equal(t, "\"1000000\"", string(res.Value))

	res = app.Query(abci.RequestQuery{Path: "/gov/proposals/UA/1/1"})
	require.Equal(t, uint32(sdk.ABCICodeOK), res.Code, res.Log)
	var proposals []json.RawMessage
	require.NoError(t, json.Unmarshal(res.Value, &proposals))
	require.Len(t, proposals, 1)
	require.Contains(t, string(proposals[0]), `"p1"`)

	res = app.Query(abci.RequestQuery{Path: "/gov/proposals/UA/0/1001"})
	require.Equal(t, uint32(sdk.CodeUnknownRequest), res.Code)

	res = app.Query(abci.RequestQuery{Path: "/gov/proposal/UA/7"})
	require.Equal(t, uint32(CodeProposalNotFound), res.Code)

	res = app.Query(abci.RequestQuery{Path: fmt.Sprintf("/gov/vote/UA/1/%s", addrs[1].String())})
	require.Equal(t, uint32(sdk.ABCICodeOK), res.Code, res.Log)
	require.Contains(t, string(res.Value), `"vote": "No"`)

	res = app.Query(abci.RequestQuery{Path: "/gov/layout/proposal/UA/1"})
	require.Equal(t, uint32(sdk.ABCICodeOK), res.Code, res.Log)
	require.Len(t, res.Value, ProposalLayoutSize)

	res = app.Query(abci.RequestQuery{Path: fmt.Sprintf("/gov/layout/vote/UA/1/%s", addrs[1].String())})
	require.Len(t, res.Value, VoteRecordLayoutSize)

	res = app.Query(abci.RequestQuery{Path: "/gov/layout/governance/UA"})
	require.Len(t, res.Value, GovernanceLayoutSize)
}
