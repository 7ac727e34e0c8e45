package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"besinrehberi/internal/calc"
)

var listFields bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List calculators and their inputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "NAME\tTITLE")
		for _, c := range calc.Registry() {
			fmt.Fprintf(out, "%s\t%s\n", c.Name, c.Title)
			if !listFields {
				continue
			}
			for _, f := range c.Fields {
				fmt.Fprintf(out, "  %s\t%s\n", f.Name, describeField(f))
			}
		}
		return nil
	},
}

// describeField renders a field's accepted values and default.
func describeField(f calc.Field) string {
	var b strings.Builder
	if f.Kind == calc.KindChoice {
		values := make([]string, 0, len(f.Choices))
		for _, c := range f.Choices {
			values = append(values, c.Value)
		}
		b.WriteString(strings.Join(values, "|"))
	} else {
		fmt.Fprintf(&b, "%g-%g", f.Min, f.Max)
		if f.Unit != "" {
			b.WriteString(" " + f.Unit)
		}
	}
	if f.Default != "" {
		fmt.Fprintf(&b, " (varsayılan %s)", f.Default)
	}
	return b.String()
}

func init() {
	listCmd.Flags().BoolVar(&listFields, "fields", false, "Also print each calculator's inputs")
	rootCmd.AddCommand(listCmd)
}
