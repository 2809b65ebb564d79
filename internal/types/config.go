// Package types defines common types used across the application.
package types

const (
	// DefaultStaticIP is assigned to the static interface when no --ip is given.
	DefaultStaticIP = "10.0.45.194/24"

	// DefaultNetplanPath is the well-known file this tool owns under /etc/netplan.
	DefaultNetplanPath = "/etc/netplan/z_calm-auto-config.yaml"
)

// DefaultNameservers is used when no --nameserver flag is given.
func DefaultNameservers() []string {
	return []string{"8.8.8.8"}
}

// InvocationConfig holds the resolved inputs of a single run.
// It is built once from flags and the settings file and never modified afterwards.
type InvocationConfig struct {
	Verbose     bool
	DontAsk     bool
	StaticIP    string   // IP/prefix for the static interface (e.g., "10.0.45.194/24")
	Gateway     string   // gateway for the static interface, required
	Nameservers []string // order preserving
	// ExplicitNameservers is true when Nameservers came from the command line
	// rather than the default list.
	ExplicitNameservers bool
}

// InterfaceRecord is one discovered network interface.
type InterfaceRecord struct {
	Name string
	MAC  string
}
