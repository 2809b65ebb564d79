package types

import "errors"

// Failure classes of a configuration run. Callers match them with errors.Is.
var (
	ErrDiscovery           = errors.New("interface discovery failed")
	ErrNotEnoughInterfaces = errors.New("not enough interfaces on machine to use calm")
	ErrActivation          = errors.New("interface activation failed")
	ErrDHCPProbe           = errors.New("dhcp probe failed")
	ErrDeclined            = errors.New("aborted by operator")
	ErrLocked              = errors.New("another configuration run is in progress")
	ErrValidation          = errors.New("netplan generate failed")
	ErrApplication         = errors.New("netplan apply failed")
)
