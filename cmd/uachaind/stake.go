package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uachain/node/app"
	"github.com/uachain/node/common/types"
	"github.com/uachain/node/plugins/staking"
)

const (
	flagNonce      = "nonce"
	flagRewardRate = "reward-rate"
	flagLockupDays = "lockup-days"
)

func stakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Token staking",
	}
	txCmds := []*cobra.Command{
		initPoolCmd(),
		depositCmd(),
		withdrawCmd(),
		claimCmd(),
		pauseCmd(true),
		pauseCmd(false),
	}
	addFromFlag(txCmds...)
	cmd.AddCommand(txCmds...)
	cmd.AddCommand(stakesCmd())
	return cmd
}

func initPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-pool <mint>",
		Short: "Create the staking pool of a token, signed by its authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			nonce, _ := cmd.Flags().GetUint8(flagNonce)
			rate, _ := cmd.Flags().GetUint64(flagRewardRate)
			return deliver(staking.NewInitPoolMsg(authority, args[0], nonce, rate))
		},
	}
	cmd.Flags().Uint8(flagNonce, 0, "pool nonce used to derive the vault address")
	cmd.Flags().Uint64(flagRewardRate, 0, "recorded reward rate, not used by reward math")
	return cmd
}

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <mint> <amount>",
		Short: "Lock tokens in the pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			amount, err := parseUint("amount", args[1], 64)
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetUint16(flagLockupDays)
			return deliver(staking.NewStakeMsg(owner, args[0], amount, days))
		},
	}
	cmd.Flags().Uint16(flagLockupDays, 0, "lockup period: 0, 30 or 90 days")
	return cmd
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <mint> <amount>",
		Short: "Unstake tokens, paying the early exit penalty inside the lockup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			amount, err := parseUint("amount", args[1], 64)
			if err != nil {
				return err
			}
			return deliver(staking.NewUnstakeMsg(owner, args[0], amount))
		},
	}
}

func claimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <mint>",
		Short: "Claim the rewards accrued since the last settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			return deliver(staking.NewClaimRewardsMsg(owner, args[0]))
		},
	}
}

func pauseCmd(paused bool) *cobra.Command {
	use, short := "pause <mint>", "Pause the pool"
	if !paused {
		use, short = "unpause <mint>", "Resume the pool"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			return deliver(staking.NewSetPausedMsg(authority, args[0], paused))
		},
	}
}

func stakesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stakes <mint>",
		Short: "List the stakes of a pool with their pending rewards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(node *app.UAChainApp) error {
				qctx := node.GetContextForQuery()
				pool, found := node.StakingKeeper.GetPool(qctx, args[0])
				if !found {
					return staking.ErrPoolNotFound(args[0])
				}
				t := newTable("owner", "amount", "lockup days", "lockup ends", "pending rewards")
				for _, stake := range node.StakingKeeper.GetUserStakes(qctx, args[0], 0, types.MaxQueryLimit) {
					pending, err := node.StakingKeeper.PendingRewards(qctx, args[0], stake.Authority)
					if err != nil {
						return err
					}
					t.AppendRow(table.Row{
						stake.Authority, stake.Amount, stake.LockupDays,
						time.Unix(stake.LockupEndTime, 0).UTC().Format(time.RFC3339), pending,
					})
				}
				t.AppendFooter(table.Row{"total", pool.TotalStaked})
				t.Render()
				return nil
			})
		},
	}
}
