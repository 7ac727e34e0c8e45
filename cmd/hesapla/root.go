package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hesapla",
	Short:         "hesapla runs the besinrehberi health calculators",
	Long:          "hesapla evaluates the same calculators the website serves (BMI, BMR, TDEE, ideal weight, one-rep max and more) and prints the result as JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hata:", err)
		os.Exit(1)
	}
}
