package api

import (
	"github.com/spf13/cobra"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmserver "github.com/tendermint/tendermint/rpc/lib/server"

	"github.com/uachain/node/app/config"
)

const (
	flagListenAddr         = "laddr"
	flagMaxOpenConnections = "max-open"
)

// ServeCommand will generate a long-running rest server
// that exposes the ledger queries over http
func ServeCommand(ctx *config.UAChainContext, openNode func() (Querier, func(), error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rest-server",
		Short: "Start the read-only REST server over the local ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			node, closeNode, err := openNode()
			if err != nil {
				return err
			}
			logger := ctx.Logger.With("module", "apiserv")
			apiCfg := *ctx.Config.API
			if cmd.Flags().Changed(flagListenAddr) {
				apiCfg.ListenAddr, _ = cmd.Flags().GetString(flagListenAddr)
			}

			handler, err := NewHandler(node, &apiCfg, logger)
			if err != nil {
				closeNode()
				return err
			}

			cfg := tmserver.DefaultConfig()
			cfg.MaxOpenConnections, _ = cmd.Flags().GetInt(flagMaxOpenConnections)
			cfg.MaxBodyBytes = apiCfg.MaxRequestBytes
			listener, err := tmserver.Listen(apiCfg.ListenAddr, cfg)
			if err != nil {
				closeNode()
				return err
			}
			go func() {
				// wrap to handle the error
				err := tmserver.StartHTTPServer(listener, handler, logger, cfg)
				if err != nil {
					panic(err)
				}
			}()

			logger.Info("REST server started", "laddr", apiCfg.ListenAddr)

			// wait forever and cleanup
			cmn.TrapSignal(logger, func() {
				err := listener.Close()
				if err != nil {
					logger.Error("error closing listener", "err", err)
				}
				closeNode()
			})
			select {}
		},
	}

	cmd.Flags().String(flagListenAddr, ctx.Config.API.ListenAddr, "The address for the server to listen on")
	cmd.Flags().Int(flagMaxOpenConnections, 1000, "The number of maximum open connections")
	return cmd
}
