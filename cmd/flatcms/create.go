package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an empty document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, _ := newApp(cmd)

		name, err := app.Service.CreateDocument(context.Background(), args[0])
		if err != nil {
			fatal("Failed to create document", err)
		}

		fmt.Printf("Document created: %s\n", name)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
