// Check command marks tasks as done.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <ids>",
	Short: "Mark tasks as done",
	Long: `Check marks the listed tasks as done. Ids are comma-separated.
Already-checked tasks are reported and skipped; the rest of the batch
still proceeds.

Example:
  taskpad check 1,3`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	p, todo, err := loadPopulated()
	if err != nil {
		return err
	}

	changed, errs := todo.Check(ids)
	reportSkips(errs)
	if len(changed) == 0 {
		return nil
	}

	if err := p.Edit(todo, changed, types.Action{Kind: types.ActionCheck}); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
