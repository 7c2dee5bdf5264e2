// Remove command deletes the persister itself.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the persister (file or table)",
	Args:  cobra.NoArgs,
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	p, err := resolveActive()
	if err != nil {
		return err
	}

	if err := p.Remove(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", p.String())
	return nil
}
