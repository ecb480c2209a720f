package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/app"
)

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <path>",
		Short: "Run a ledger query, e.g. gov/governance/UA or staking/rewards/UA/<owner>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(node *app.UAChainApp) error {
				res := node.Query(abci.RequestQuery{Path: args[0]})
				if res.Code != uint32(sdk.ABCICodeOK) {
					return errors.Errorf("query failed, code=%d: %s", res.Code, res.Log)
				}
				return printJSON(res.Value)
			})
		},
	}
}
