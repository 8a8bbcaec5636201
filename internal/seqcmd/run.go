package seqcmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vipcxj/steprange/internal/steprange"
)

const ShortDesc = "Print an arithmetic progression from FROM up to, but not including, END"

const LongDesc = `Seq builds the range [FROM, END) advancing by STEP and prints every value it visits.

The range is given either as 1 to 3 positional numbers (END | FROM END | FROM END STEP)
or as a single FROM:END:STEP notation. FROM defaults to 0 and STEP to 1. STEP must not be 0;
a STEP pointing away from END simply yields nothing. Negative positional numbers must follow "--".

Values are printed one per line by default, or joined by comma/space, or as a json/yaml list.
With --var the output becomes a shell assignment that calling scripts can eval.`

// ResolveRange builds a Range of T from command line arguments.
func ResolveRange[T steprange.Number](args []string) (steprange.Range[T], error) {
	if len(args) == 0 {
		return steprange.Range[T]{}, errors.New("missing range, expected END, FROM END [STEP] or FROM:END:STEP")
	}
	if len(args) > 3 {
		return steprange.Range[T]{}, fmt.Errorf("too many arguments: %d, expected at most 3", len(args))
	}
	if len(args) > 1 {
		for _, a := range args {
			if strings.Contains(a, ":") {
				return steprange.Range[T]{}, fmt.Errorf("range notation %q cannot be mixed with positional bounds", a)
			}
		}
	}
	return steprange.Parse[T](strings.Join(args, ":"))
}

// Run resolves the range described by args, renders it according to opts and
// writes the result to w. Nothing is written for an empty plain output.
func Run(w io.Writer, args []string, opts Options) error {
	var out string
	var err error
	switch opts.Kind {
	case steprange.KindUint:
		out, err = render[uint64](args, opts.Formats)
	case steprange.KindFloat:
		out, err = render[float64](args, opts.Formats)
	case steprange.KindInt:
		out, err = render[int64](args, opts.Formats)
	default:
		return fmt.Errorf("unsupported number type: %v", opts.Kind)
	}
	if err != nil {
		return err
	}

	if opts.VarName != "" {
		shellType, err := ResolveShellType(opts.Shell)
		if err != nil {
			return err
		}
		if out, err = ExportVar(shellType, opts.VarName, out, opts.Export); err != nil {
			return err
		}
	}

	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func render[T steprange.Number](args []string, formats []string) (string, error) {
	r, err := ResolveRange[T](args)
	if err != nil {
		return "", err
	}
	slog.Debug("Resolved range", "range", r.String(), "len", r.Len(), "formats", formats)
	return Render[T](r, formats)
}
