package governance

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/common/types"
)

const AbciQueryPrefix = "gov"

// createAbciQueryHandler serves
//
//	gov/governances
//	gov/governance/<mint>
//	gov/quorum/<mint>
//	gov/proposal/<mint>/<id>
//	gov/proposals/<mint>[/<offset>/<limit>]
//	gov/vote/<mint>/<id>/<voter>
//	gov/votes/<mint>/<id>
//	gov/layout/{governance,proposal,vote}/...
func createAbciQueryHandler(keeper Keeper) types.AbciQueryHandler {
	return func(app types.ChainApp, req abci.RequestQuery, path []string) (res *abci.ResponseQuery) {
		// expects at least two query path segments.
		if path[0] != AbciQueryPrefix || len(path) < 2 {
			return nil
		}
		ctx := app.GetContextForQuery()
		cdc := app.GetCodec()
		switch path[1] {
		case "governances":
			return types.QueryJSON(cdc, keeper.GetAllGovernances(ctx))
		case "governance", "quorum":
			if len(path) < 3 {
				return types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires a mint path arg", AbciQueryPrefix, path[1])
			}
			gov, found := keeper.GetGovernance(ctx, path[2])
			if !found {
				return errResponse(ErrGovernanceNotFound(path[2]))
			}
			if path[1] == "quorum" {
				quorum, err := QuorumRequired(gov)
				if err != nil {
					return errResponse(err)
				}
				return types.QueryJSON(cdc, quorum)
			}
			return types.QueryJSON(cdc, gov)
		case "proposal":
			proposal, errRes := queryProposal(ctx, keeper, path)
			if errRes != nil {
				return errRes
			}
			return types.QueryJSON(cdc, proposal)
		case "proposals":
			if len(path) < 3 {
				return types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires a mint path arg", AbciQueryPrefix, path[1])
			}
			offset, limit, err := types.ParsePagination(path[3:])
			if err != nil {
				return types.QueryErr(sdk.CodeUnknownRequest, err.Error())
			}
			return types.QueryJSON(cdc, keeper.GetProposals(ctx, path[2], offset, limit))
		case "vote":
			record, errRes := queryVote(ctx, keeper, path)
			if errRes != nil {
				return errRes
			}
			return types.QueryJSON(cdc, record)
		case "votes":
			if len(path) < 4 {
				return types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires mint and id path args", AbciQueryPrefix, path[1])
			}
			id, err := strconv.ParseUint(path[3], 10, 64)
			if err != nil {
				return types.QueryErr(sdk.CodeUnknownRequest, "unable to parse proposal id %q", path[3])
			}
			return types.QueryJSON(cdc, keeper.GetVoteRecords(ctx, path[2], id))
		case "layout":
			return queryLayout(ctx, keeper, path)
		default:
			return types.QueryErr(sdk.CodeUnknownRequest, "Unknown `%s` query path: %v", AbciQueryPrefix, path)
		}
	}
}

// queryLayout shifts the "layout" segment off and answers with the fixed-size record bytes.
func queryLayout(ctx sdk.Context, keeper Keeper, path []string) *abci.ResponseQuery {
	if len(path) < 4 {
		return types.QueryErr(sdk.CodeUnknownRequest, "%s layout query requires a record kind and mint", AbciQueryPrefix)
	}
	inner := append([]string{AbciQueryPrefix}, path[2:]...)
	switch path[2] {
	case "governance":
		gov, found := keeper.GetGovernance(ctx, path[3])
		if !found {
			return errResponse(ErrGovernanceNotFound(path[3]))
		}
		return types.QueryRaw(gov.MarshalLayout())
	case "proposal":
		proposal, errRes := queryProposal(ctx, keeper, inner)
		if errRes != nil {
			return errRes
		}
		return types.QueryRaw(proposal.MarshalLayout())
	case "vote":
		record, errRes := queryVote(ctx, keeper, inner)
		if errRes != nil {
			return errRes
		}
		return types.QueryRaw(record.MarshalLayout())
	default:
		return types.QueryErr(sdk.CodeUnknownRequest, "unknown layout record %q", path[2])
	}
}

func queryProposal(ctx sdk.Context, keeper Keeper, path []string) (Proposal, *abci.ResponseQuery) {
	if len(path) < 4 {
		return Proposal{}, types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires mint and id path args", AbciQueryPrefix, path[1])
	}
	id, err := strconv.ParseUint(path[3], 10, 64)
	if err != nil {
		return Proposal{}, types.QueryErr(sdk.CodeUnknownRequest, "unable to parse proposal id %q", path[3])
	}
	proposal, found := keeper.GetProposal(ctx, path[2], id)
	if !found {
		return Proposal{}, errResponse(ErrProposalNotFound(path[2], id))
	}
	return proposal, nil
}

func queryVote(ctx sdk.Context, keeper Keeper, path []string) (VoteRecord, *abci.ResponseQuery) {
	if len(path) < 5 {
		return VoteRecord{}, types.QueryErr(sdk.CodeUnknownRequest, "%s %s query requires mint, id and voter path args", AbciQueryPrefix, path[1])
	}
	id, err := strconv.ParseUint(path[3], 10, 64)
	if err != nil {
		return VoteRecord{}, types.QueryErr(sdk.CodeUnknownRequest, "unable to parse proposal id %q", path[3])
	}
	voter, err := sdk.AccAddressFromBech32(path[4])
	if err != nil {
		return VoteRecord{}, types.QueryErr(sdk.CodeInvalidAddress, err.Error())
	}
	record, found := keeper.GetVoteRecord(ctx, path[2], id, voter)
	if !found {
		return VoteRecord{}, types.QueryErr(sdk.CodeUnknownRequest, "%s has not voted on proposal %d", voter.String(), id)
	}
	return record, nil
}

func errResponse(err sdk.Error) *abci.ResponseQuery {
	return &abci.ResponseQuery{
		Code: uint32(err.Code()),
		Log:  err.Error(),
	}
}
