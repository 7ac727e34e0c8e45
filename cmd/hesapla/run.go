package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"besinrehberi/internal/calc"
)

var runCmd = &cobra.Command{
	Use:   "run <calculator> [field=value ...]",
	Short: "Evaluate a calculator",
	Long:  "Evaluate a calculator and print its result as JSON. Omitted fields take their default value; use `hesapla list --fields` to see them.",
	Example: "  hesapla run vucut-kitle-indeksi kilo=72,5 boy=178\n" +
		"  hesapla run gunluk-kalori-ihtiyaci cinsiyet=kadin yas=29 aktivite=az-aktif",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := calc.Lookup(args[0])
		if !ok {
			return fmt.Errorf("bilinmeyen hesaplayıcı %q", args[0])
		}

		raw, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}

		result, err := c.Evaluate(raw)
		if err != nil {
			return err
		}

		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

// parseAssignments turns key=value arguments into calculator inputs.
func parseAssignments(args []string) (map[string]string, error) {
	raw := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("girdi %q alan=değer biçiminde olmalı", a)
		}
		raw[k] = v
	}
	return raw, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
