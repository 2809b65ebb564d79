package types

import (
	"fmt"
	"strings"
)

// Command is an external program invocation with a fixed argument vector.
type Command struct {
	Name  string
	Args  []string
	Stdin []byte
}

// NewCommand builds a command without stdin.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// WithStdin returns a copy of the command that feeds data on stdin.
func (c Command) WithStdin(data []byte) Command {
	c.Stdin = data
	return c
}

// Privileged prefixes the command with the elevation program (e.g., "sudo").
// An empty prefix returns the command unchanged.
func (c Command) Privileged(prefix string) Command {
	if prefix == "" {
		return c
	}
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Name)
	args = append(args, c.Args...)
	return Command{Name: prefix, Args: args, Stdin: c.Stdin}
}

// String renders the argument vector for logging.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult is the captured outcome of a finished command.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r *CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandError is returned when a command ran but exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, msg)
}

// Check converts a non-zero result into a *CommandError.
func (r *CommandResult) Check(cmd Command) error {
	if r.Success() {
		return nil
	}
	return &CommandError{Command: cmd.String(), ExitCode: r.ExitCode, Stderr: string(r.Stderr)}
}
