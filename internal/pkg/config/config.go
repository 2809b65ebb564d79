package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/types"

	"gopkg.in/yaml.v3"
)

// Discovery modes
const (
	DiscoveryCommand = "command"
	DiscoveryNetlink = "netlink"
)

// Defaults are used when the matching flag is not given on the command line
type Defaults struct {
	IP          string   `yaml:"ip"`
	Nameservers []string `yaml:"nameservers"`
}

// DHCPProbeConfig controls the optional DHCP server check on the DHCP interface
type DHCPProbeConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// Config represents the settings file
type Config struct {
	Logging          logging.LogConfig `yaml:"logging"`
	NetplanPath      string            `yaml:"netplan_path"`
	LockPath         string            `yaml:"lock_path"`
	PrivilegeCommand string            `yaml:"privilege_command"`
	Discovery        string            `yaml:"discovery"`
	LegacyFormat     bool              `yaml:"legacy_format"`
	Defaults         Defaults          `yaml:"defaults"`
	DHCPProbe        DHCPProbeConfig   `yaml:"dhcp_probe"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		NetplanPath:      types.DefaultNetplanPath,
		LockPath:         "/run/calmnetconfig.lock",
		PrivilegeCommand: "sudo",
		Discovery:        DiscoveryCommand,
		Defaults: Defaults{
			IP:          types.DefaultStaticIP,
			Nameservers: types.DefaultNameservers(),
		},
		DHCPProbe: DHCPProbeConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// Load loads configuration from a YAML file on top of Default().
// Keys missing from the file keep their default value.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.NetplanPath == "" {
		return fmt.Errorf("netplan_path is required")
	}
	if !filepath.IsAbs(c.NetplanPath) {
		return fmt.Errorf("netplan_path %s: must be an absolute path", c.NetplanPath)
	}
	if filepath.Ext(c.NetplanPath) != ".yaml" {
		return fmt.Errorf("netplan_path %s: netplan only reads *.yaml files", c.NetplanPath)
	}
	if c.LockPath == "" {
		return fmt.Errorf("lock_path is required")
	}
	if c.LockPath == c.NetplanPath {
		return fmt.Errorf("lock_path must differ from netplan_path")
	}

	switch c.Discovery {
	case DiscoveryCommand, DiscoveryNetlink:
	default:
		return fmt.Errorf("discovery %q: must be %q or %q", c.Discovery, DiscoveryCommand, DiscoveryNetlink)
	}

	if c.Defaults.IP == "" {
		return fmt.Errorf("defaults.ip is required")
	}
	if len(c.Defaults.Nameservers) == 0 {
		return fmt.Errorf("defaults.nameservers must not be empty")
	}

	if c.DHCPProbe.Enabled && c.DHCPProbe.Timeout <= 0 {
		return fmt.Errorf("dhcp_probe.timeout must be positive when the probe is enabled")
	}

	return nil
}
