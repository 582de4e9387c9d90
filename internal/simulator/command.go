package simulator

import "strings"

// Command is a structured description of one shell-level step: a program
// name plus its ordered argument list. Keeping the pieces separate avoids
// quoting hazards while building; only the execution boundary flattens it.
type Command struct {
	Program string
	Args    []string
}

// String renders the command the way it is shown to the user and handed to
// the shell.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}
