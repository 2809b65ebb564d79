// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

import (
	"context"
	"time"

	"calmnetconfig/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/vishvananda/netlink"
)

// CommandExecutor is a port for running external programs.
// A non-zero exit status is reported through the result, not the error;
// the error is reserved for commands that could not be run at all.
type CommandExecutor interface {
	Run(ctx context.Context, cmd types.Command) (*types.CommandResult, error)
}

// DHCPClient is a port for DHCP client operations.
type DHCPClient interface {
	// DiscoverOffer broadcasts a DISCOVER and returns the first OFFER; no lease is taken
	DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error)
}

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for link discovery and activation.
type NetworkManager interface {
	// ListLinks returns all links in kernel enumeration order
	ListLinks() ([]netlink.Link, error)

	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error
}

// FileManager is a port for file system operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// RemoveFile deletes a file; a missing file is not an error
	RemoveFile(filename string) error
}

// Prompter asks the operator a yes/no question.
type Prompter interface {
	// Confirm returns ctx.Err() if ctx is done before the operator answers
	Confirm(ctx context.Context, question string) (bool, error)
}

// Locker guards the generated config file against concurrent runs.
type Locker interface {
	// TryLock acquires the lock without blocking and reports whether it succeeded
	TryLock() (bool, error)

	Unlock() error
}
