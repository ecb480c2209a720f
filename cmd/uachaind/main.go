package main

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/uachain/node/app"
	"github.com/uachain/node/app/config"
	ualog "github.com/uachain/node/common/log"
	"github.com/uachain/node/plugins/api"
)

const (
	Bech32PrefixAccAddr = "ua"
	Bech32PrefixAccPub  = "uapub"
)

var ctx = config.NewDefaultContext()

func main() {
	cobra.EnableCommandSorting = false

	sdkConfig := sdk.GetConfig()
	sdkConfig.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	sdkConfig.Seal()

	executor := cli.PrepareBaseCmd(newRootCmd(), "UA", defaultHome())
	executor.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "uachaind",
		Short:             "UA Chain ledger daemon",
		SilenceUsage:      true,
		PersistentPreRunE: persistentPreRunE,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = ualog.Close()
		},
	}

	rootCmd.AddCommand(
		initCmd(),
		accountCmd(),
		govCmd(),
		stakeCmd(),
		queryCmd(),
		inspectCmd(),
		api.ServeCommand(ctx, openQuerier),
		versionCmd(),
	)
	return rootCmd
}

func defaultHome() string {
	home, err := homedir.Expand("~/.uachaind")
	if err != nil {
		return ".uachaind"
	}
	return home
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	home := viper.GetString(cli.HomeFlag)
	if _, err := ctx.ParseConfig(viper.New(), home); err != nil {
		return err
	}
	logger, err := app.NewLogger(ctx.Config)
	if err != nil {
		return err
	}
	ctx.Logger = logger
	return nil
}
