package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/flatcms/pkg/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for admin.password_hash",
	Long: `Hash a password for the admin.password_hash setting of flatcms.yaml.
Without an argument the password is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			password = strings.TrimRight(string(data), "\r\n")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			fatal("Failed to hash password", err)
		}
		fmt.Println(hash)
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
