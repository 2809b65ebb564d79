// Package activation brings the selected interfaces administratively up.
package activation

import (
	"context"
	"fmt"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// CommandActivator runs `ip link set <name> up` through the privilege command.
type CommandActivator struct {
	executor  port.CommandExecutor
	privilege string
}

var _ port.LinkActivator = (*CommandActivator)(nil)

// NewCommandActivator creates an activator. privilege is the elevation program
// prefixed to every invocation, e.g. "sudo"; empty runs `ip` directly.
func NewCommandActivator(executor port.CommandExecutor, privilege string) *CommandActivator {
	return &CommandActivator{executor: executor, privilege: privilege}
}

// Activate invokes the up command for every record before looking at any
// result, then checks the results in record order and reports the first failure.
func (a *CommandActivator) Activate(ctx context.Context, records []types.InterfaceRecord) error {
	cmds := make([]types.Command, len(records))
	results := make([]*types.CommandResult, len(records))
	errs := make([]error, len(records))

	for i, rec := range records {
		logging.WithComponentAndInterface("activation", rec.Name).Debug("Setting link up")
		cmds[i] = types.NewCommand("ip", "link", "set", rec.Name, "up").Privileged(a.privilege)
		results[i], errs[i] = a.executor.Run(ctx, cmds[i])
	}

	for i, rec := range records {
		if errs[i] != nil {
			return fmt.Errorf("%w: %s: %w", types.ErrActivation, rec.Name, errs[i])
		}
		if err := results[i].Check(cmds[i]); err != nil {
			return fmt.Errorf("%w: %s: %w", types.ErrActivation, rec.Name, err)
		}
	}
	return nil
}
