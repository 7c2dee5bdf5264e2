// Shared helpers for taskpad CLI commands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskpad/internal/persister"
	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// parseIDs parses a comma-separated id list such as "1,2,3".
func parseIDs(arg string) ([]uint32, error) {
	parts := strings.Split(arg, ",")
	ids := make([]uint32, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q", part)
		}
		ids = append(ids, uint32(id))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no task ids in %q", arg)
	}
	return ids, nil
}

// resolveActive returns the backend for the configured persister.
func resolveActive() (types.Persister, error) {
	return persister.Resolve(cfg.Persister)
}

// loadTodo resolves the active persister and materializes its tasks.
func loadTodo() (types.Persister, *types.Todo, error) {
	p, err := resolveActive()
	if err != nil {
		return nil, nil, err
	}
	todo, err := types.Load(p)
	if err != nil {
		return nil, nil, err
	}
	return p, todo, nil
}

// loadPopulated is loadTodo for commands that mutate existing tasks; an
// empty target is an error rather than a silent no-op.
func loadPopulated() (types.Persister, *types.Todo, error) {
	p, todo, err := loadTodo()
	if err != nil {
		return nil, nil, err
	}
	if len(todo.Tasks) == 0 {
		return nil, nil, fmt.Errorf("%q: %w", p.String(), types.ErrTargetMissing)
	}
	return p, todo, nil
}

// printTasks renders each task with its priority styling.
func printTasks(cmd *cobra.Command, tasks []types.Task) {
	for _, task := range tasks {
		fmt.Fprintln(cmd.OutOrStdout(), task.Render())
	}
}

// reportSkips surfaces per-task batch errors without failing the command.
func reportSkips(errs []error) {
	for _, err := range errs {
		log.Warn("skipping task", "reason", err)
	}
}
