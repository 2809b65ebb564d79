// Package command provides the external program execution adapter implementation.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// interruptGrace is how long a cancelled command may take to exit after SIGTERM
// before its output pipes are abandoned and it is killed.
const interruptGrace = 10 * time.Second

// ExecutorAdapter is an adapter that implements the CommandExecutor port using os/exec.
type ExecutorAdapter struct{}

// Ensure ExecutorAdapter implements the CommandExecutor port
var _ port.CommandExecutor = (*ExecutorAdapter)(nil)

// NewExecutorAdapter creates a new command executor adapter.
func NewExecutorAdapter() *ExecutorAdapter {
	return &ExecutorAdapter{}
}

// Run starts the command, waits for it and captures stdout, stderr and the exit code.
// On cancellation the process gets SIGTERM, which sudo relays to its child,
// and Run waits for it to exit.
func (e *ExecutorAdapter) Run(ctx context.Context, c types.Command) (*types.CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = interruptGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}

	err := cmd.Run()
	result := &types.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("command %q interrupted: %w", c.String(), ctx.Err())
		}
		return nil, fmt.Errorf("failed to run command %q: %w", c.String(), err)
	}

	return result, nil
}
