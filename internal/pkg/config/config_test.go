//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calmnetconfig/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: compact

netplan_path: /etc/netplan/90-calm.yaml
privilege_command: ""
discovery: netlink
legacy_format: true
defaults:
  ip: 10.0.46.10/24
  nameservers: [1.1.1.1, 9.9.9.9]
dhcp_probe:
  enabled: true
  timeout: 5s
`
		configFile := filepath.Join(tempDir, "valid.yml")
		require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "compact", config.Logging.Format)
		assert.Equal(t, "/etc/netplan/90-calm.yaml", config.NetplanPath)
		assert.Equal(t, "", config.PrivilegeCommand)
		assert.Equal(t, DiscoveryNetlink, config.Discovery)
		assert.True(t, config.LegacyFormat)
		assert.Equal(t, "10.0.46.10/24", config.Defaults.IP)
		assert.Equal(t, []string{"1.1.1.1", "9.9.9.9"}, config.Defaults.Nameservers)
		assert.True(t, config.DHCPProbe.Enabled)
		assert.Equal(t, 5*time.Second, config.DHCPProbe.Timeout)

		// not in the file
		assert.Equal(t, "/run/calmnetconfig.lock", config.LockPath)
	})

	t.Run("PartialConfigKeepsDefaults", func(t *testing.T) {
		configFile := filepath.Join(tempDir, "partial.yml")
		require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: warn\n"), 0644))

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.Equal(t, "simple", config.Logging.Format)
		assert.Equal(t, types.DefaultNetplanPath, config.NetplanPath)
		assert.Equal(t, "sudo", config.PrivilegeCommand)
		assert.Equal(t, DiscoveryCommand, config.Discovery)
		assert.Equal(t, []string{"8.8.8.8"}, config.Defaults.Nameservers)
		assert.NoError(t, config.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configFile := filepath.Join(tempDir, "invalid.yml")
		require.NoError(t, os.WriteFile(configFile, []byte("invalid: yaml: content: [\n"), 0644))

		_, err := Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"EmptyNetplanPath", func(c *Config) { c.NetplanPath = "" }, "netplan_path is required"},
		{"RelativeNetplanPath", func(c *Config) { c.NetplanPath = "calm.yaml" }, "must be an absolute path"},
		{"WrongExtension", func(c *Config) { c.NetplanPath = "/etc/netplan/calm.yml" }, "only reads *.yaml"},
		{"EmptyLockPath", func(c *Config) { c.LockPath = "" }, "lock_path is required"},
		{"LockPathIsNetplanPath", func(c *Config) { c.LockPath = c.NetplanPath }, "must differ"},
		{"UnknownDiscovery", func(c *Config) { c.Discovery = "sysfs" }, "discovery \"sysfs\""},
		{"EmptyDefaultIP", func(c *Config) { c.Defaults.IP = "" }, "defaults.ip is required"},
		{"EmptyDefaultNameservers", func(c *Config) { c.Defaults.Nameservers = nil }, "defaults.nameservers"},
		{"ProbeWithoutTimeout", func(c *Config) {
			c.DHCPProbe.Enabled = true
			c.DHCPProbe.Timeout = 0
		}, "dhcp_probe.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
