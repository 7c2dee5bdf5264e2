// Copy command migrates tasks between persisters.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/internal/persister"
)

var (
	flagCopyForce bool
	flagCopyDrop  bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy all tasks to another persister",
	Long: `Copy migrates the full task set between persisters, translating
between formats and backends as needed.

Example:
  taskpad copy tasks.csv tasks.json
  taskpad copy tasks.csv sqlite:///tasks.db`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&flagCopyForce, "force", false, "overwrite a destination that already has tasks")
	copyCmd.Flags().BoolVar(&flagCopyDrop, "drop", false, "remove the source after copying")
}

func runCopy(cmd *cobra.Command, args []string) error {
	policy := cfg
	if flagCopyForce {
		policy.ForceCopy = true
	}
	if flagCopyDrop {
		policy.DropAfterCopy = true
	}

	return persister.Copy(args[0], args[1], policy)
}
