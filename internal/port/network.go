package port

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

import (
	"context"

	"calmnetconfig/internal/types"
)

// NetworkConfigurator is the primary port: one complete configuration run.
type NetworkConfigurator interface {
	Run(ctx context.Context) error
}

// LinkDiscoverer enumerates usable interfaces in discovery order.
type LinkDiscoverer interface {
	Discover(ctx context.Context) ([]types.InterfaceRecord, error)
}

// LinkActivator brings interfaces administratively up.
type LinkActivator interface {
	Activate(ctx context.Context, records []types.InterfaceRecord) error
}

// ConfigBackend validates and applies the generated netplan configuration.
type ConfigBackend interface {
	// Generate runs the backend's dry-run/generate step
	Generate(ctx context.Context) error

	// Apply activates the configuration on the live network stack
	Apply(ctx context.Context) error
}
