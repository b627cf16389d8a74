package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a document",
	Long:  `Delete permanently removes a document from the data directory.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		app, _ := newApp(cmd)

		if err := app.Service.DeleteDocument(context.Background(), name); err != nil {
			fatal("Failed to delete document", err)
		}

		fmt.Printf("Document deleted: %s\n", name)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
