// Clean command empties the persister without deleting it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every task but keep the persister",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	p, err := resolveActive()
	if err != nil {
		return err
	}

	if err := p.Clean(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", p.String())
	return nil
}
