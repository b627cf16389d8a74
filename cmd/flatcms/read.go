package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/flatcms/pkg/core"
)

var readJSON bool

// documentJSON is the --json view of a document; content is kept as text.
type documentJSON struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

var readCmd = &cobra.Command{
	Use:   "read [name]",
	Short: "Read a document",
	Long:  `Read a document by name. Outputs the raw content by default, or a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, _ := newApp(cmd)

		doc, err := app.Service.GetDocument(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read document", err)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			err := encoder.Encode(documentJSON{
				Name:        doc.Name,
				Format:      string(doc.Format),
				ContentType: core.ContentType(doc.Name),
				Content:     string(doc.Content),
			})
			if err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		os.Stdout.Write(doc.Content)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
