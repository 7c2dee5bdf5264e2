// Sample command populates the persister with example tasks.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Populate the persister with example tasks",
	Long:  "Sample replaces the persister's content with a small example task list.",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	p, err := resolveActive()
	if err != nil {
		return err
	}

	todo := types.Sample()
	if err := p.Replace(todo); err != nil {
		return err
	}

	printTasks(cmd, todo.Tasks)
	return nil
}
