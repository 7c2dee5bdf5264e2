// Add command appends a new task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var flagAddPriority string

var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a task",
	Long: `Add appends a new task with the next free id.

Example:
  taskpad add "Water the plants"
  taskpad add --priority high "Call the bank"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddPriority, "priority", "med", "task priority: high, med, low or none")
}

func runAdd(cmd *cobra.Command, args []string) error {
	p, todo, err := loadTodo()
	if err != nil {
		return err
	}

	var next uint32 = 1
	for _, id := range todo.IDs() {
		if id >= next {
			next = id + 1
		}
	}

	task := types.NewTask(next, args[0], types.ParsePriority(flagAddPriority), false)
	id := todo.Add(task)

	if err := p.Save(todo); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	printTasks(cmd, []types.Task{*todo.Get([]uint32{id})[0]})
	return nil
}
