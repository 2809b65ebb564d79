// Package calm implements the configuration run: discover, activate, render,
// confirm, write, validate and apply, removing the written file on any failure.
package calm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/pkg/netplan"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"

	"github.com/sirupsen/logrus"
)

const (
	writeQuestion = "enter y to continue writing config: "
	applyQuestion = "enter y to continue applying config: "

	configFileMode = 0600
)

// Options are the per-run settings of a Manager.
type Options struct {
	Invocation       types.InvocationConfig
	NetplanPath      string
	LegacyFormat     bool          // byte-for-byte the layout older calm releases wrote
	DHCPProbeTimeout time.Duration // only used when Dependencies.DHCPClient is set
}

// Dependencies are the ports a Manager drives.
type Dependencies struct {
	Discoverer port.LinkDiscoverer
	Activator  port.LinkActivator
	Backend    port.ConfigBackend
	FileMgr    port.FileManager
	Prompter   port.Prompter
	Locker     port.Locker
	DHCPClient port.DHCPClient // optional; enables the DHCP server check
	Out        io.Writer       // verbose echo of interfaces and rendered config
}

// Manager runs one netplan configuration. It implements the NetworkConfigurator port.
type Manager struct {
	opts Options
	deps Dependencies
}

// Ensure Manager implements the NetworkConfigurator port
var _ port.NetworkConfigurator = (*Manager)(nil)

// NewManager creates a configuration manager.
func NewManager(opts Options, deps Dependencies) (*Manager, error) {
	if opts.Invocation.Gateway == "" {
		return nil, fmt.Errorf("gateway is required")
	}
	if opts.NetplanPath == "" {
		return nil, fmt.Errorf("netplan path is required")
	}
	if deps.Discoverer == nil || deps.Activator == nil || deps.Backend == nil ||
		deps.FileMgr == nil || deps.Prompter == nil || deps.Locker == nil {
		return nil, fmt.Errorf("incomplete dependencies")
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &Manager{opts: opts, deps: deps}, nil
}

// Run executes the pipeline. On success the config file stays in place; on
// any failure after the first confirmation it is removed.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.WithComponent("calm").WithField("path", m.opts.NetplanPath)
	logger.Debug("Starting network configuration")

	logger.Debug("Collecting information about interfaces")
	records, err := m.deps.Discoverer.Discover(ctx)
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return fmt.Errorf("%w: found %d usable interface(s)", types.ErrNotEnoughInterfaces, len(records))
	}

	// The first two in enumeration order are used. That order comes from the
	// kernel and is not guaranteed to be stable across drivers or boots.
	dhcpIface, staticIface := records[0], records[1]
	m.echo("INTERFACES:\n")
	for _, rec := range records {
		m.echo("%s %s\n", rec.Name, rec.MAC)
	}

	if err := m.deps.Activator.Activate(ctx, records[:2]); err != nil {
		return err
	}

	if m.deps.DHCPClient != nil {
		if err := m.probeDHCP(ctx, dhcpIface); err != nil {
			return err
		}
	}

	logger.Debug("Generating config file")
	params := m.params(dhcpIface, staticIface)
	rendered, err := m.render(params)
	if err != nil {
		return err
	}
	m.echo("%s", rendered)

	if err := m.confirm(ctx, logger, writeQuestion); err != nil {
		return err
	}

	locked, err := m.deps.Locker.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return types.ErrLocked
	}
	defer func() {
		if err := m.deps.Locker.Unlock(); err != nil {
			logger.WithError(err).Warn("Failed to release run lock")
		}
	}()

	logger.Debug("Writing config into file")
	if err := m.deps.FileMgr.WriteFile(m.opts.NetplanPath, rendered, configFileMode); err != nil {
		return m.rollback(logger, err)
	}
	if err := m.verifyWritten(rendered); err != nil {
		return m.rollback(logger, err)
	}

	logger.Debug("Validating configuration")
	if err := m.deps.Backend.Generate(ctx); err != nil {
		return m.rollback(logger, err)
	}

	if err := m.confirm(ctx, logger, applyQuestion); err != nil {
		return err
	}

	logger.Info("Applying configuration")
	if err := m.deps.Backend.Apply(ctx); err != nil {
		return m.rollback(logger, err)
	}

	logger.WithFields(logrus.Fields{
		"dhcp_mac":   dhcpIface.MAC,
		"static_mac": staticIface.MAC,
		"ip":         m.opts.Invocation.StaticIP,
		"gateway":    m.opts.Invocation.Gateway,
	}).Info("Configuration finished")
	return nil
}

func (m *Manager) params(dhcpIface, staticIface types.InterfaceRecord) netplan.Params {
	inv := m.opts.Invocation

	nameservers := inv.Nameservers
	if len(nameservers) == 0 {
		nameservers = types.DefaultNameservers()
	}
	staticIP := inv.StaticIP
	if staticIP == "" {
		staticIP = types.DefaultStaticIP
	}

	return netplan.Params{
		DHCPMAC:       dhcpIface.MAC,
		StaticMAC:     staticIface.MAC,
		StaticIP:      staticIP,
		Gateway:       inv.Gateway,
		Nameservers:   nameservers,
		TrailingComma: m.opts.LegacyFormat && inv.ExplicitNameservers,
		LegacyLayout:  m.opts.LegacyFormat,
	}
}

// render fills the template and checks that the result parses back to params.
func (m *Manager) render(params netplan.Params) ([]byte, error) {
	rendered, err := netplan.Render(params)
	if err != nil {
		return nil, err
	}
	doc, err := netplan.Parse(rendered)
	if err != nil {
		return nil, err
	}
	if err := doc.Verify(params); err != nil {
		return nil, fmt.Errorf("rendered config is invalid: %w", err)
	}
	return rendered, nil
}

func (m *Manager) probeDHCP(ctx context.Context, iface types.InterfaceRecord) error {
	logger := logging.WithComponentAndInterface("dhcp", iface.Name).WithField("mac", iface.MAC)
	logger.Debug("Probing for DHCP server")

	offer, err := m.deps.DHCPClient.DiscoverOffer(ctx, iface.Name, m.opts.DHCPProbeTimeout)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrDHCPProbe, iface.Name, err)
	}

	logger.WithFields(logrus.Fields{
		"offered_ip": offer.YourIPAddr.String(),
		"server":     offer.ServerIdentifier().String(),
	}).Info("DHCP server answered")
	return nil
}

// confirm asks the operator. A refusal or an interrupt removes the config
// file if one exists.
func (m *Manager) confirm(ctx context.Context, logger *logrus.Entry, question string) error {
	ok, err := m.deps.Prompter.Confirm(ctx, question)
	if err != nil {
		return m.rollback(logger, err)
	}
	if !ok {
		return m.rollback(logger, types.ErrDeclined)
	}
	return nil
}

// verifyWritten reads the file back so that netplan validates exactly the
// bytes that were confirmed.
func (m *Manager) verifyWritten(rendered []byte) error {
	written, err := m.deps.FileMgr.ReadFile(m.opts.NetplanPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(written, rendered) {
		return fmt.Errorf("config file %s does not match the rendered config (%d of %d bytes)",
			m.opts.NetplanPath, len(written), len(rendered))
	}
	return nil
}

func (m *Manager) rollback(logger *logrus.Entry, cause error) error {
	if !m.deps.FileMgr.FileExists(m.opts.NetplanPath) {
		return cause
	}
	if err := m.deps.FileMgr.RemoveFile(m.opts.NetplanPath); err != nil {
		logger.WithError(err).Error("Failed to remove config file")
		return errors.Join(cause, err)
	}
	logger.Info("Removed config file")
	return cause
}

func (m *Manager) echo(format string, args ...any) {
	if m.opts.Invocation.Verbose {
		fmt.Fprintf(m.deps.Out, format, args...)
	}
}
