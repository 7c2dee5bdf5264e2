// Uncheck command marks tasks as pending again.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var uncheckCmd = &cobra.Command{
	Use:   "uncheck <ids>",
	Short: "Mark tasks as pending",
	Long: `Uncheck reverts the listed tasks to pending. Ids are comma-separated.
Already-unchecked tasks are reported and skipped; the rest of the batch
still proceeds.

Example:
  taskpad uncheck 1,3`,
	Args: cobra.ExactArgs(1),
	RunE: runUncheck,
}

func runUncheck(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	p, todo, err := loadPopulated()
	if err != nil {
		return err
	}

	changed, errs := todo.Uncheck(ids)
	reportSkips(errs)
	if len(changed) == 0 {
		return nil
	}

	if err := p.Edit(todo, changed, types.Action{Kind: types.ActionUncheck}); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
