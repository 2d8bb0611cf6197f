package cmd

import (
	"fmt"
	"io"
	"strings"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Icons: ✓ success, ✗ error or failure (written to stderr).

// console writes user-facing lines to a command's stdout and stderr.
type console struct {
	out io.Writer
	err io.Writer
}

func newConsole(out, errW io.Writer) console {
	return console{out: out, err: errW}
}

// banner prints a title followed by an underline of width '=' characters.
func (c console) banner(title string, width int) {
	fmt.Fprintln(c.out, title)
	fmt.Fprintln(c.out, strings.Repeat("=", width))
}

// ok prints a success line, "  ✓  msg" or "  ✓  [name] msg" when name is set.
func (c console) ok(name, msg string) {
	if name == "" {
		fmt.Fprintf(c.out, "  ✓  %s\n", msg)
	} else {
		fmt.Fprintf(c.out, "  ✓  [%s] %s\n", name, msg)
	}
}

// fail prints an error line to stderr.
func (c console) fail(name, msg string) {
	if name == "" {
		fmt.Fprintf(c.err, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(c.err, "  ✗  [%s] %s\n", name, msg)
	}
}

// hint prints an indented follow-up to the preceding error line.
func (c console) hint(msg string) {
	fmt.Fprintf(c.err, "     %s\n", msg)
}
