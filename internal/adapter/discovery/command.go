package discovery

import (
	"context"
	"fmt"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// CommandDiscoverer lists links with `ip -o link` and filters them through awk.
type CommandDiscoverer struct {
	executor port.CommandExecutor
}

var _ port.LinkDiscoverer = (*CommandDiscoverer)(nil)

// NewCommandDiscoverer creates a discoverer running commands through executor.
func NewCommandDiscoverer(executor port.CommandExecutor) *CommandDiscoverer {
	return &CommandDiscoverer{executor: executor}
}

// Discover returns the non-loopback, non-docker interfaces in `ip` order.
func (d *CommandDiscoverer) Discover(ctx context.Context) ([]types.InterfaceRecord, error) {
	logger := logging.WithComponent("discovery")

	listCmd := types.NewCommand("ip", "-o", "link")
	listed, err := d.executor.Run(ctx, listCmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDiscovery, err)
	}
	if err := listed.Check(listCmd); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDiscovery, err)
	}

	filterCmd := types.NewCommand("awk", AwkProgram).WithStdin(listed.Stdout)
	filtered, err := d.executor.Run(ctx, filterCmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDiscovery, err)
	}
	if err := filtered.Check(filterCmd); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDiscovery, err)
	}

	logger.Debugf("Collected interface data:\n%s", filtered.Stdout)
	return ParseRecords(string(filtered.Stdout)), nil
}
