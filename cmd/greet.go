/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const greeting = "Good day!"

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Print a greeting and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return err
		},
	}
}
