// Package backend drives the netplan CLI.
package backend

import (
	"context"
	"fmt"
	"strings"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// NetplanAdapter implements the ConfigBackend port with `netplan generate` and `netplan apply`.
type NetplanAdapter struct {
	executor  port.CommandExecutor
	privilege string
}

// Ensure NetplanAdapter implements the ConfigBackend port
var _ port.ConfigBackend = (*NetplanAdapter)(nil)

// NewNetplanAdapter creates a netplan backend. privilege prefixes both commands.
func NewNetplanAdapter(executor port.CommandExecutor, privilege string) *NetplanAdapter {
	return &NetplanAdapter{executor: executor, privilege: privilege}
}

// Generate renders backend configuration from /etc/netplan without applying it.
func (n *NetplanAdapter) Generate(ctx context.Context) error {
	cmd := types.NewCommand("netplan", "--debug", "generate").Privileged(n.privilege)
	if err := n.run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	return nil
}

// Apply applies the current netplan configuration to the running system.
func (n *NetplanAdapter) Apply(ctx context.Context) error {
	cmd := types.NewCommand("netplan", "apply").Privileged(n.privilege)
	if err := n.run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", types.ErrApplication, err)
	}
	return nil
}

func (n *NetplanAdapter) run(ctx context.Context, cmd types.Command) error {
	logger := logging.WithComponent("netplan").WithField("command", cmd.String())
	logger.Debug("Running netplan")

	result, err := n.executor.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if out := strings.TrimSpace(string(result.Stdout)); out != "" {
		logger.Debug(out)
	}
	return result.Check(cmd)
}
