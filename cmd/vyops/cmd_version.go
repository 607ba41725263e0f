package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show vyops version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vyops %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
