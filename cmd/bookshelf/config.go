package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		// An existing file may be invalid, so init never loads it
		e, err := newEnv(cmd, config.DefaultConfig())
		if err != nil {
			return err
		}
		defer e.close()
		path := e.configSvc.Path()

		if fileExists(path) && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := e.configSvc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config after defaults, file and environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		data, err := config.Marshal(e.cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
