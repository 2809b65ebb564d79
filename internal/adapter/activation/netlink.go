package activation

import (
	"context"
	"fmt"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"
)

// NetlinkActivator sets links up through netlink. The process needs CAP_NET_ADMIN.
type NetlinkActivator struct {
	networkMgr port.NetworkManager
}

var _ port.LinkActivator = (*NetlinkActivator)(nil)

// NewNetlinkActivator creates an activator backed by networkMgr.
func NewNetlinkActivator(networkMgr port.NetworkManager) *NetlinkActivator {
	return &NetlinkActivator{networkMgr: networkMgr}
}

// Activate attempts every record, then reports the first failure in record order.
func (a *NetlinkActivator) Activate(ctx context.Context, records []types.InterfaceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	errs := make([]error, len(records))
	for i, rec := range records {
		logging.WithComponentAndInterface("activation", rec.Name).Debug("Setting link up")
		link, err := a.networkMgr.GetLinkByName(rec.Name)
		if err != nil {
			errs[i] = err
			continue
		}
		errs[i] = a.networkMgr.SetLinkUp(link)
	}

	for i, rec := range records {
		if errs[i] != nil {
			return fmt.Errorf("%w: %s: %w", types.ErrActivation, rec.Name, errs[i])
		}
	}
	return nil
}
