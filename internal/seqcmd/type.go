//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package seqcmd

import "github.com/vipcxj/steprange/internal/steprange"

// Options controls how the seq command resolves and prints a range.
type Options struct {
	Kind    steprange.Kind
	Formats []string
	// VarName, when set, wraps the output in a shell assignment.
	VarName string
	Shell   ShellType
	Export  bool
}

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)
