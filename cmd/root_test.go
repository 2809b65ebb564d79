//go:build unit

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"calmnetconfig/internal/pkg/config"
	"calmnetconfig/internal/types"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		verboseFlag, dontAskFlag, netlinkFlag, probeDHCPFlag, legacyFormatFlag = false, false, false, false, false
		nameserverFlag = nil
		configFlag = ""
		ipFlag = types.DefaultStaticIP
		rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		rootCmd.SetArgs(nil)
	})
}

func TestRootCmd_ParsesFlags(t *testing.T) {
	resetFlags(t)

	require.NoError(t, rootCmd.ParseFlags([]string{
		"-v", "--dontask", "--ip", "10.0.50.2/24",
		"--nameserver", "1.1.1.1", "--nameserver", "9.9.9.9",
	}))

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "10.0.50.2/24", cfg.Defaults.IP)

	inv := invocation(cfg, "192.168.1.1")
	assert.True(t, inv.Verbose)
	assert.True(t, inv.DontAsk)
	assert.Equal(t, "10.0.50.2/24", inv.StaticIP)
	assert.Equal(t, "192.168.1.1", inv.Gateway)
	assert.Equal(t, []string{"1.1.1.1", "9.9.9.9"}, inv.Nameservers)
	assert.True(t, inv.ExplicitNameservers)
}

func TestInvocation_Defaults(t *testing.T) {
	resetFlags(t)

	inv := invocation(config.Default(), "192.168.1.1")
	assert.False(t, inv.Verbose)
	assert.False(t, inv.DontAsk)
	assert.Equal(t, "10.0.45.194/24", inv.StaticIP)
	assert.Equal(t, []string{"8.8.8.8"}, inv.Nameservers)
	assert.False(t, inv.ExplicitNameservers)
}

func TestLoadConfig_File(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "calm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discovery: sysfs\n"), 0644))
	configFlag = path

	_, err := loadConfig(rootCmd)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config validation error")

	netlinkFlag = true
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, config.DiscoveryNetlink, cfg.Discovery)
}

func TestRootCmd_RequiresGateway(t *testing.T) {
	resetFlags(t)

	rootCmd.SetArgs([]string{"--dontask"})
	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
}
