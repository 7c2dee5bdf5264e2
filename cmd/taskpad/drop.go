// Drop command removes tasks.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var flagDropForce bool

var dropCmd = &cobra.Command{
	Use:   "drop <ids>",
	Short: "Remove tasks",
	Long: `Drop removes the listed tasks. Without --force a task must be checked
before it can be dropped; refusals are reported and the task is kept.

Example:
  taskpad drop 3,4
  taskpad drop --force 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVar(&flagDropForce, "force", false, "drop tasks regardless of checked state")
}

func runDrop(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	p, todo, err := loadPopulated()
	if err != nil {
		return err
	}

	force := flagDropForce || cfg.ForceDrop

	removed, errs := todo.Drop(ids, force)
	reportSkips(errs)
	if len(removed) == 0 {
		return nil
	}

	if err := p.Edit(todo, removed, types.Action{Kind: types.ActionDrop, Force: force}); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
