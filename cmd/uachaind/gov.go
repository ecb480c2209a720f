package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uachain/node/app"
	"github.com/uachain/node/common/types"
	"github.com/uachain/node/plugins/governance"
)

const (
	flagQuorum      = "quorum"
	flagThreshold   = "threshold"
	flagVotingDays  = "voting-days"
	flagTitle       = "title"
	flagDescription = "description"
	flagType        = "type"
)

func govCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gov",
		Short: "Token governance",
	}
	txCmds := []*cobra.Command{
		initGovernanceCmd(),
		proposeCmd(),
		voteCmd(),
		finalizeCmd(),
		executeCmd(),
	}
	addFromFlag(txCmds...)
	cmd.AddCommand(txCmds...)
	cmd.AddCommand(proposalsCmd())
	return cmd
}

func initGovernanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <mint>",
		Short: "Create the governance of a token, signed by its authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			quorum, _ := cmd.Flags().GetUint8(flagQuorum)
			threshold, _ := cmd.Flags().GetUint64(flagThreshold)
			days, _ := cmd.Flags().GetUint8(flagVotingDays)
			return deliver(governance.NewInitGovernanceMsg(authority, args[0], quorum, threshold, days))
		},
	}
	cmd.Flags().Uint8(flagQuorum, 10, "percent of the total supply that must vote")
	cmd.Flags().Uint64(flagThreshold, 0, "balance a proposer must hold")
	cmd.Flags().Uint8(flagVotingDays, 0, "voting period in days, 0 for the configured default")
	return cmd
}

func proposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose <mint>",
		Short: "Open a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposer, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			title, _ := cmd.Flags().GetString(flagTitle)
			description, _ := cmd.Flags().GetString(flagDescription)
			typeStr, _ := cmd.Flags().GetString(flagType)
			proposalType, err := governance.ProposalTypeFromString(typeStr)
			if err != nil {
				return err
			}
			return deliver(governance.NewCreateProposalMsg(proposer, args[0], title, description, proposalType))
		},
	}
	cmd.Flags().String(flagTitle, "", "proposal title")
	cmd.Flags().String(flagDescription, "", "proposal description")
	cmd.Flags().String(flagType, governance.General.String(), "ParameterChange, TreasurySpend, ProtocolUpgrade or General")
	return cmd
}

func voteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <mint> <proposal-id> <yes|no>",
		Short: "Vote on an active proposal with the current balance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			id, err := parseUint("proposal id", args[1], 64)
			if err != nil {
				return err
			}
			choice, err := governance.VoteChoiceFromString(args[2])
			if err != nil {
				return err
			}
			return deliver(governance.NewVoteMsg(voter, args[0], id, choice))
		},
	}
}

func finalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize <mint> <proposal-id>",
		Short: "Close voting on a proposal whose voting period has ended",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			id, err := parseUint("proposal id", args[1], 64)
			if err != nil {
				return err
			}
			return deliver(governance.NewFinalizeProposalMsg(from, args[0], id))
		},
	}
}

func executeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <mint> <proposal-id>",
		Short: "Execute a passed proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddr(cmd)
			if err != nil {
				return err
			}
			id, err := parseUint("proposal id", args[1], 64)
			if err != nil {
				return err
			}
			return deliver(governance.NewExecuteProposalMsg(from, args[0], id))
		},
	}
}

func proposalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proposals <mint>",
		Short: "List the proposals of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(node *app.UAChainApp) error {
				qctx := node.GetContextForQuery()
				if _, found := node.GovKeeper.GetGovernance(qctx, args[0]); !found {
					return governance.ErrGovernanceNotFound(args[0])
				}
				t := newTable("id", "type", "title", "status", "yes", "no", "voting ends")
				for _, p := range node.GovKeeper.GetProposals(qctx, args[0], 0, types.MaxQueryLimit) {
					t.AppendRow(table.Row{
						p.Id, p.ProposalType, p.Title, p.Status, p.YesVotes, p.NoVotes,
						time.Unix(p.VotingEndTime, 0).UTC().Format(time.RFC3339),
					})
				}
				t.Render()
				return nil
			})
		},
	}
}
