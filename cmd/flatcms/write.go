package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var writeContent string

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [name]",
	Short: "Write a document",
	Long: `Create or replace a document with the given content.
Without --content the content is read from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		app, _ := newApp(cmd)

		content := []byte(writeContent)
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = data
		}

		if err := app.Service.SaveDocument(context.Background(), name, content); err != nil {
			fatal("Failed to save document", err)
		}

		fmt.Printf("Document '%s' saved.\n", name)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Document content")
}
