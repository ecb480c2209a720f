package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uachain/node/app/config"
	"github.com/uachain/node/version"
)

const flagOverwrite = "overwrite"

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default app config under --home",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := ctx.Config.HomeDir
			path := filepath.Join(config.ConfigDir(home), config.AppConfigFileName+"."+config.AppConfigFileType)
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if _, err := os.Stat(path); err == nil && !overwrite {
				return fmt.Errorf("%s already exists, pass --%s to replace it", path, flagOverwrite)
			}
			written, err := config.WriteConfigFile(home, ctx.Config)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "wrote", written)
			return nil
		},
	}
	cmd.Flags().Bool(flagOverwrite, false, "overwrite an existing app config")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the node version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version.Version)
		},
	}
}
