/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vipcxj/steprange/internal/seqcmd"
	"github.com/vipcxj/steprange/internal/steprange"
)

// EnvPrefix is prepended to every seq flag name to get its environment variable,
// e.g. --format can be set with STEPRANGE_FORMAT.
const EnvPrefix = "STEPRANGE"

const seqExample = `  %[1]s seq 5                       # 0 1 2 3 4
  %[1]s seq 0 10 3 --format comma     # 0,3,6,9
  %[1]s seq -- 10 0 -3                # 10 7 4 1
  %[1]s seq 0:1:0.25 --type float     # 0 0.25 0.5 0.75
  eval "$(%[1]s seq 3 -f space --var NUMS --shell sh)"`

// enumValue is a string flag restricted to a fixed set of names.
type enumValue struct {
	value string
	names []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, names []string) *enumValue {
	return &enumValue{value: def, names: names}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.names, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.names, ", "))
	}
	e.value = s
	return nil
}

// Type reports "string" so viper reads the flag through its plain value.
func (e *enumValue) Type() string { return "string" }

func completeFrom(names []string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		var completions []cobra.Completion
		for _, name := range names {
			if strings.HasPrefix(name, toComplete) {
				completions = append(completions, name)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

func newSeqCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	seqCmd := &cobra.Command{
		Use:   "seq [flags] [FROM] END [STEP] | FROM:END:STEP",
		Short: seqcmd.ShortDesc,
		Long:  seqcmd.LongDesc,
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			return seqcmd.Run(cmd.OutOrStdout(), args, opts)
		},
	}
	seqCmd.Example = fmt.Sprintf(seqExample, "steprange")

	flags := seqCmd.Flags()
	kinds := steprange.KindStrings()
	formats := seqcmd.AllowedFormats
	shells := seqcmd.ShellTypeStrings()
	flags.VarP(newEnumValue(steprange.KindInt.String(), kinds), "type", "t",
		fmt.Sprintf("Number type of the range, one of %s", strings.Join(kinds, ", ")))
	flags.StringSliceP("format", "f", []string{formats[0]},
		fmt.Sprintf("Output format, combined of %s or one of %s", strings.Join(formats[:3], ", "), strings.Join(formats[3:], ", ")))
	flags.String("var", "", "Print a shell assignment of the output to this variable instead of the raw values")
	flags.Var(newEnumValue(seqcmd.ShellTypeAuto.String(), shells), "shell",
		fmt.Sprintf("Shell syntax used with --var, one of %s", strings.Join(shells, ", ")))
	flags.Bool("export", false, "With --var, export the variable (sh) or persist it for the user (powershell, cmd)")

	_ = seqCmd.RegisterFlagCompletionFunc("type", completeFrom(kinds))
	_ = seqCmd.RegisterFlagCompletionFunc("format", completeFrom(formats))
	_ = seqCmd.RegisterFlagCompletionFunc("shell", completeFrom(shells))

	// flags win over environment, environment over defaults
	_ = v.BindPFlags(flags)
	return seqCmd
}

func loadOptions(v *viper.Viper) (seqcmd.Options, error) {
	kind, err := steprange.KindString(v.GetString("type"))
	if err != nil {
		return seqcmd.Options{}, fmt.Errorf("invalid type: %w", err)
	}
	shell, err := seqcmd.ShellTypeString(v.GetString("shell"))
	if err != nil {
		return seqcmd.Options{}, fmt.Errorf("invalid shell: %w", err)
	}
	formats, err := seqcmd.NormalizeFormats(v.GetStringSlice("format"))
	if err != nil {
		return seqcmd.Options{}, err
	}
	opts := seqcmd.Options{
		Kind:    kind,
		Formats: formats,
		VarName: v.GetString("var"),
		Shell:   shell,
		Export:  v.GetBool("export"),
	}
	slog.Debug("Loaded options", "type", kind, "formats", formats, "var", opts.VarName, "shell", shell, "export", opts.Export)
	return opts, nil
}
