// Set commands rewrite task content or priority.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Rewrite task content or priority",
}

var setContentCmd = &cobra.Command{
	Use:   "content <ids> <text>",
	Short: "Rewrite the content of tasks",
	Long: `Set content overwrites the content of the listed tasks.

Example:
  taskpad set content 2 "Write the annual report"`,
	Args: cobra.ExactArgs(2),
	RunE: runSetContent,
}

var setPriorityCmd = &cobra.Command{
	Use:   "priority <ids> <priority>",
	Short: "Rewrite the priority of tasks",
	Long: `Set priority overwrites the priority of the listed tasks.
Valid priorities: high, med, low, none.

Example:
  taskpad set priority 1,2 high`,
	Args: cobra.ExactArgs(2),
	RunE: runSetPriority,
}

func init() {
	setCmd.AddCommand(setContentCmd)
	setCmd.AddCommand(setPriorityCmd)
}

func runSetContent(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}
	content := args[1]

	p, todo, err := loadPopulated()
	if err != nil {
		return err
	}

	todo.SetContent(ids, content)

	action := types.Action{Kind: types.ActionSetContent, Content: content}
	if err := p.Edit(todo, ids, action); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}

func runSetPriority(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}
	priority := types.ParsePriority(args[1])

	p, todo, err := loadPopulated()
	if err != nil {
		return err
	}

	todo.SetPriority(ids, priority)

	action := types.Action{Kind: types.ActionSetPriority, Priority: priority}
	if err := p.Edit(todo, ids, action); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
