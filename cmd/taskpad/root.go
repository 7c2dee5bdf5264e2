// Root command for the taskpad CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/internal/config"
	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// Global flag values.
var flagPersister string

// cfg holds the configuration loaded by PersistentPreRunE, with the
// --persister flag already folded in. All subcommands read from it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "taskpad",
	Short: "Taskpad is a personal task tracker",
	Long: `Taskpad manages a task list stored in a file (csv, json, xml) or a
database (sqlite, mongodb). The active persister comes from the
--persister flag or the configuration file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if flagPersister != "" {
			cfg.Persister = flagPersister
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPersister, "persister", "p", "", "task persister: file path or connection string (default: from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(configCmd)
}
