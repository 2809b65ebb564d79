package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calmnetconfig/internal/adapter/activation"
	"calmnetconfig/internal/adapter/backend"
	"calmnetconfig/internal/adapter/calm"
	"calmnetconfig/internal/adapter/discovery"
	"calmnetconfig/internal/adapter/infrastructure/command"
	infraDhcp "calmnetconfig/internal/adapter/infrastructure/dhcp"
	"calmnetconfig/internal/adapter/infrastructure/file"
	"calmnetconfig/internal/adapter/infrastructure/lock"
	"calmnetconfig/internal/adapter/infrastructure/network"
	"calmnetconfig/internal/adapter/infrastructure/prompt"
	"calmnetconfig/internal/pkg/config"
	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/port"
	"calmnetconfig/internal/types"

	"github.com/spf13/cobra"
)

// loadConfig reads the settings file if one was given and lets flags override it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if verboseFlag {
		cfg.Logging.Level = "debug"
	}
	if netlinkFlag {
		cfg.Discovery = config.DiscoveryNetlink
	}
	if probeDHCPFlag {
		cfg.DHCPProbe.Enabled = true
	}
	if legacyFormatFlag {
		cfg.LegacyFormat = true
	}
	if cmd.Flags().Changed("ip") {
		cfg.Defaults.IP = ipFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return cfg, nil
}

// invocation builds the immutable per-run inputs.
func invocation(cfg *config.Config, gateway string) types.InvocationConfig {
	inv := types.InvocationConfig{
		Verbose:     verboseFlag,
		DontAsk:     dontAskFlag,
		StaticIP:    cfg.Defaults.IP,
		Gateway:     gateway,
		Nameservers: append([]string(nil), cfg.Defaults.Nameservers...),
	}
	if len(nameserverFlag) > 0 {
		inv.Nameservers = append([]string(nil), nameserverFlag...)
		inv.ExplicitNameservers = true
	}
	return inv
}

// createNetworkConfigurator wires the adapters selected by the settings.
func createNetworkConfigurator(cfg *config.Config, inv types.InvocationConfig) (port.NetworkConfigurator, error) {
	executor := command.NewExecutorAdapter()

	var (
		discoverer port.LinkDiscoverer
		activator  port.LinkActivator
	)
	switch cfg.Discovery {
	case config.DiscoveryNetlink:
		networkMgr := network.NewManagerAdapter()
		discoverer = discovery.NewNetlinkDiscoverer(networkMgr)
		activator = activation.NewNetlinkActivator(networkMgr)
	default:
		discoverer = discovery.NewCommandDiscoverer(executor)
		activator = activation.NewCommandActivator(executor, cfg.PrivilegeCommand)
	}

	var prompter port.Prompter = prompt.NewLinePrompter(os.Stdin, os.Stdout)
	if inv.DontAsk {
		prompter = prompt.AlwaysYes{}
	}

	deps := calm.Dependencies{
		Discoverer: discoverer,
		Activator:  activator,
		Backend:    backend.NewNetplanAdapter(executor, cfg.PrivilegeCommand),
		FileMgr:    file.NewManagerAdapter(),
		Prompter:   prompter,
		Locker:     lock.NewFileLockAdapter(cfg.LockPath),
		Out:        os.Stdout,
	}
	if cfg.DHCPProbe.Enabled {
		deps.DHCPClient = infraDhcp.NewClientAdapter()
	}

	return calm.NewManager(calm.Options{
		Invocation:       inv,
		NetplanPath:      cfg.NetplanPath,
		LegacyFormat:     cfg.LegacyFormat,
		DHCPProbeTimeout: cfg.DHCPProbe.Timeout,
	}, deps)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	// arguments are valid from here on; failures are not usage errors
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.InitLogger(cfg.Logging)
	logger := logging.GetLogger()
	logger.WithField("config_file", configFlag).Debug("Starting network configuration")

	// SIGINT/SIGTERM cancel the running command; the manager then removes the config file
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configurator, err := createNetworkConfigurator(cfg, invocation(cfg, args[0]))
	if err != nil {
		return err
	}

	return configurator.Run(ctx)
}
