/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd builds a fresh command tree, so that flag values never leak
// between two in-process executions.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "steprange",
		Short: "Generate arithmetic progressions for scripts",
		Long: `steprange produces the values of a numeric range [FROM, END) advancing by STEP,
in shell friendly formats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			setupLogger(cmd.ErrOrStderr(), verbose)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newSeqCmd())
	rootCmd.AddCommand(newGreetCmd())
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(rootCmd.ErrPrefix(), err.Error())
		return 1
	}
	return 0
}

func setupLogger(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.StampMilli,
		NoColor:    noColor,
	})))
}
