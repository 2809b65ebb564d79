package discovery

import (
	"context"
	"fmt"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// NetlinkDiscoverer reads links straight from the kernel.
type NetlinkDiscoverer struct {
	networkMgr port.NetworkManager
}

var _ port.LinkDiscoverer = (*NetlinkDiscoverer)(nil)

// NewNetlinkDiscoverer creates a discoverer backed by networkMgr.
func NewNetlinkDiscoverer(networkMgr port.NetworkManager) *NetlinkDiscoverer {
	return &NetlinkDiscoverer{networkMgr: networkMgr}
}

// Discover applies the same name filter as the awk program and additionally
// skips links without a hardware address, which netplan cannot match on.
func (d *NetlinkDiscoverer) Discover(ctx context.Context) ([]types.InterfaceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	links, err := d.networkMgr.ListLinks()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDiscovery, err)
	}

	var records []types.InterfaceRecord
	for _, link := range links {
		attrs := link.Attrs()
		logger := logging.WithComponentAndInterface("discovery", attrs.Name)
		if Excluded(attrs.Name) {
			logger.Debug("Skipping excluded interface")
			continue
		}
		if len(attrs.HardwareAddr) == 0 {
			logger.Debug("Skipping interface without hardware address")
			continue
		}
		records = append(records, types.InterfaceRecord{Name: attrs.Name, MAC: attrs.HardwareAddr.String()})
	}
	return records, nil
}
