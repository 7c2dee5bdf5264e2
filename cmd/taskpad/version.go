// Version command for the taskpad CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the taskpad release version.
const version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskpad version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "taskpad", version)
	},
}
