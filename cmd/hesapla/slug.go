package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"besinrehberi/internal/slug"
)

var slugCmd = &cobra.Command{
	Use:   "slug <text ...>",
	Short: "Print the URL slug of a food or category name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), slug.Generate(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
