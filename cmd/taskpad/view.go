// View command prints the current task list.
package main

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the task list",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	_, todo, err := loadTodo()
	if err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
