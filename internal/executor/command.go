package executor

import (
	"regexp"
	"strings"
)

var (
	safeArg    = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)
	secretFlag = regexp.MustCompile(`(?i)^(--?[a-z0-9-]*password[a-z0-9-]*=).+$`)
)

const redacted = "REDACTED"

// Command is a single invocation of an external program.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string

	// Stdin is written to the program's standard input when non-empty.
	Stdin string
}

// NewCommand builds a command from a program name and its arguments.
func NewCommand(args ...string) *Command {
	return &Command{Args: append([]string(nil), args...)}
}

// WithStdin returns a copy of the command that feeds input on standard input.
func (c *Command) WithStdin(input string) *Command {
	return &Command{
		Args:  append([]string(nil), c.Args...),
		Stdin: input,
	}
}

// Name returns the program being invoked.
func (c *Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the command as a single shell line. Standard input is
// rendered as an echo piped into the command.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		parts = append(parts, Quote(arg))
	}
	line := strings.Join(parts, " ")

	if c.Stdin != "" {
		line = "echo " + Quote(strings.TrimSuffix(c.Stdin, "\n")) + " | " + line
	}

	return line
}

// Redacted renders the command like String with password flag values masked.
func (c *Command) Redacted() string {
	masked := &Command{Args: make([]string, len(c.Args)), Stdin: c.Stdin}
	for i, arg := range c.Args {
		masked.Args[i] = secretFlag.ReplaceAllString(arg, "${1}"+redacted)
	}
	return masked.String()
}

// Quote returns s in a form the POSIX shell reads back as a single word.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if safeArg.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
