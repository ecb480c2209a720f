package governance

import (
	"encoding/json"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/uachain/node/common/testutils"
)

func TestCreateProposalMsg(t *testing.T) {
	addr := testutils.NewAddrs(1)[0]
	tests := []struct {
		msg       CreateProposalMsg
		pass      bool
		errorCode sdk.CodeType
	}{
		{
			msg:       NewCreateProposalMsg([]byte("abc"), testMint, "title", "", General),
			pass:      false,
			errorCode: sdk.CodeInvalidAddress,
		},
		{
			msg:       NewCreateProposalMsg(addr, "", "title", "", General),
			pass:      false,
			errorCode: CodeInvalidTokenMint,
		},
		{
			msg:  NewCreateProposalMsg(addr, testMint, strings.Repeat("t", MaxTitleLength), "", General),
			pass: true,
		},
		{
			msg:       NewCreateProposalMsg(addr, testMint, strings.Repeat("t", MaxTitleLength+1), "", General),
			pass:      false,
			errorCode: CodeTitleTooLong,
		},
		{
			msg:       NewCreateProposalMsg(addr, testMint, "title", strings.Repeat("d", MaxDescriptionLength+1), General),
			pass:      false,
			errorCode: CodeDescriptionTooLong,
		},
		{
			msg:       NewCreateProposalMsg(addr, testMint, "title", "", ProposalType(4)),
			pass:      false,
			errorCode: CodeInvalidProposalType,
		},
	}

	for i, tc := range tests {
		err := tc.msg.ValidateBasic()
		if tc.pass {
			require.Nil(t, err, "test: %v", i)
		} else {
			require.NotNil(t, err, "test: %v", i)
			require.Equal(t, tc.errorCode, err.Code(), "test: %v", i)
		}
	}
}

func TestInitGovernanceMsg(t *testing.T) {
	addr := testutils.NewAddrs(1)[0]
	require.Nil(t, NewInitGovernanceMsg(addr, testMint, 100, 0, 0).ValidateBasic())

	err := NewInitGovernanceMsg(addr, testMint, 101, 0, 0).ValidateBasic()
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidQuorum, err.Code())

	err = NewInitGovernanceMsg(addr, strings.Repeat("M", 33), 10, 0, 0).ValidateBasic()
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidTokenMint, err.Code())
}

func TestVoteMsg(t *testing.T) {
	addr := testutils.NewAddrs(1)[0]
	msg := NewVoteMsg(addr, testMint, 3, VoteNo)
	require.Nil(t, msg.ValidateBasic())
	require.Equal(t, []sdk.AccAddress{addr}, msg.GetSigners())
	require.Equal(t, MsgRoute, msg.Route())

	err := NewVoteMsg(addr, testMint, 3, VoteChoice(2)).ValidateBasic()
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidVoteChoice, err.Code())

	var decoded VoteMsg
	require.NoError(t, json.Unmarshal(msg.GetSignBytes(), &decoded))
	require.Equal(t, VoteNo, decoded.Vote)
	require.Contains(t, string(msg.GetSignBytes()), `"vote":"No"`)
}

func TestEnumStrings(t *testing.T) {
	for _, pt := range []ProposalType{ParameterChange, TreasurySpend, ProtocolUpgrade, General} {
		parsed, err := ProposalTypeFromString(pt.String())
		require.NoError(t, err)
		require.Equal(t, pt, parsed)
	}
	_, err := ProposalTypeFromString("Emergency")
	require.Error(t, err)

	status, err := ProposalStatusFromString("quorum_not_met")
	require.NoError(t, err)
	require.Equal(t, StatusQuorumNotMet, status)
}
