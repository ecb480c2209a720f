package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/app"
)

const flagFrom = "from"

// withApp runs fn against the ledger under --home and releases it afterwards.
func withApp(fn func(node *app.UAChainApp) error) error {
	node, closeNode, err := openApp()
	if err != nil {
		return err
	}
	defer closeNode()
	return fn(node)
}

// deliver sends msg as a block of its own and prints the outcome.
func deliver(msg sdk.Msg) error {
	return withApp(func(node *app.UAChainApp) error {
		return printResult(node.DeliverMsg(msg))
	})
}

func parseAddr(bech string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(bech)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", bech)
	}
	return addr, nil
}

func fromAddr(cmd *cobra.Command) (sdk.AccAddress, error) {
	from, _ := cmd.Flags().GetString(flagFrom)
	if from == "" {
		return nil, errors.Errorf("--%s is required", flagFrom)
	}
	return parseAddr(from)
}

func addFromFlag(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.Flags().String(flagFrom, "", "address of the signer")
	}
}

func parseUint(name, value string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Token balances",
	}
	cmd.AddCommand(fundCmd(), balanceCmd())
	return cmd
}

func fundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <address> <amount> <mint>",
		Short: "Credit tokens to an address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return errors.Errorf("invalid amount %q", args[1])
			}
			return withApp(func(node *app.UAChainApp) error {
				return printResult(node.FundAccount(addr, sdk.Coins{sdk.NewCoin(args[2], amount)}))
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show every token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			return withApp(func(node *app.UAChainApp) error {
				coins := node.AccountKeeper.GetCoins(node.GetContextForQuery(), addr)
				t := newTable("mint", "amount")
				for _, coin := range coins {
					t.AppendRow(table.Row{coin.Denom, coin.Amount})
				}
				t.Render()
				return nil
			})
		},
	}
}
