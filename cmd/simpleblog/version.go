package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version can be overridden at build time via -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of simpleblog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simpleblog version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
