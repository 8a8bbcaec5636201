package seqcmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// splitLines 拆分 s，换行序列 "\r\n"、"\r"、"\n" 作为单独元素保留。
// "a\r\nb\nc" -> ["a", "\r\n", "b", "\n", "c"]
func splitLines(s string) []string {
	var parts []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n':
			flush()
			parts = append(parts, "\r\n")
			i++
		case s[i] == '\r' || s[i] == '\n':
			flush()
			parts = append(parts, string(s[i]))
		default:
			buf.WriteByte(s[i])
		}
	}
	flush()
	return parts
}

// shQuote wraps s in single quotes. Newlines are legal inside; embedded
// single quotes are closed, escaped and reopened.
func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// psLiteral builds a PowerShell expression for s. Line breaks cannot live in
// a single quoted string, so they are emitted as "`n" pieces joined with +.
func psLiteral(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, psQuote(p))
		}
	}
	return strings.Join(out, " + ")
}

// cmdLiteral escapes s for cmd.exe set/setx. Line breaks become literal \n.
func cmdLiteral(s string) string {
	var b strings.Builder
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			b.WriteString(`\n`)
		case "\r":
			b.WriteString(`\r`)
		case "\r\n":
			b.WriteString(`\r\n`)
		default:
			b.WriteString(strings.ReplaceAll(p, `"`, `\"`))
		}
	}
	return b.String()
}

// ExportVar renders an assignment of val to varName for the given shell.
// With export set the variable is exported (sh) or persisted for the user
// (powershell, cmd).
func ExportVar(shellType ShellType, varName string, val string, export bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if export {
			return fmt.Sprintf("export %s=%s", varName, shQuote(val)), nil
		}
		return fmt.Sprintf("%s=%s", varName, shQuote(val)), nil
	case ShellTypePowershell:
		if export {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", psQuote(varName), psLiteral(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", varName, psLiteral(val)), nil
	case ShellTypeCmd:
		if export {
			return fmt.Sprintf("setx %s \"%s\"", varName, cmdLiteral(val)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", varName, cmdLiteral(val)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// ResolveShellType returns shellType unchanged unless it is ShellTypeAuto, in
// which case the calling shell is detected. Unknown shells count as sh.
func ResolveShellType(shellType ShellType) (ShellType, error) {
	if shellType != ShellTypeAuto {
		if !shellType.IsAShellType() {
			return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shellType)
		}
		return shellType, nil
	}
	shellName, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	slog.Debug("Detected user shell", "shell", shellName)
	return shellTypeOf(shellName), nil
}

func shellTypeOf(shellName string) ShellType {
	switch strings.TrimSuffix(strings.ToLower(shellName), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks up the parent process chain looking for a known
// shell, then falls back to $SHELL (unix) and $COMSPEC (windows). Those only
// name the default shell, not necessarily the one running us.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		if isKnownShell(name) {
			return name, nil
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}

func isKnownShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	for _, k := range knownShells {
		if n == k {
			return true
		}
	}
	return false
}
