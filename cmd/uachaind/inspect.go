package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uachain/node/app"
)

const flagLimit = "limit"

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [store]",
		Short: "Show the committed iavl trees of the ledger, or the raw entries of one store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt(flagLimit)
			return withApp(func(node *app.UAChainApp) error {
				if len(args) == 0 {
					infos, err := node.InspectStores()
					if err != nil {
						return err
					}
					t := newTable("store", "version", "size", "hash")
					for _, info := range infos {
						t.AppendRow(table.Row{info.Name, info.Version, info.Size, fmt.Sprintf("%X", info.Hash)})
					}
					t.Render()
					return nil
				}
				entries, err := node.DumpStore(args[0], limit)
				if err != nil {
					return err
				}
				t := newTable("key", "value")
				for _, entry := range entries {
					t.AppendRow(table.Row{fmt.Sprintf("%X", entry.Key), fmt.Sprintf("%X", entry.Value)})
				}
				t.Render()
				return nil
			})
		},
	}
	cmd.Flags().Int(flagLimit, 100, "maximum entries to print, 0 for all")
	return cmd
}
