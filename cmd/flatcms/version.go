package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/flatcms"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flatcms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flatcms version %s\n", strings.TrimSpace(flatcms.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
