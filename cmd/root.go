package cmd

import (
	"calmnetconfig/internal/types"

	"github.com/spf13/cobra"
)

var (
	verboseFlag      bool
	dontAskFlag      bool
	ipFlag           string
	nameserverFlag   []string
	configFlag       string
	netlinkFlag      bool
	probeDHCPFlag    bool
	legacyFormatFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "calmnetconfig [flags] gateway",
	Short: "calmnetconfig writes and applies the calm netplan configuration",
	Long: `calmnetconfig brings up the first two network interfaces of the machine and
writes a netplan configuration for them: the first one uses DHCP and is renamed
calm0, the second one is renamed calm1 and gets a static address, the given
gateway and nameservers. The file is validated with netplan generate and
applied with netplan apply; it is removed again if any step fails.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          runConfigure,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "increases log verbosity")
	flags.BoolVar(&dontAskFlag, "dontask", false, "disable asking for action")
	flags.StringVar(&ipFlag, "ip", types.DefaultStaticIP, "static ip/prefix for the second interface")
	flags.StringArrayVar(&nameserverFlag, "nameserver", nil, "nameserver for the second interface; repeat for multiple nameservers (default [8.8.8.8])")
	flags.StringVarP(&configFlag, "config", "f", "", "Path to settings file (YAML)")
	flags.BoolVar(&netlinkFlag, "netlink", false, "discover and bring up interfaces through netlink instead of ip/awk")
	flags.BoolVar(&probeDHCPFlag, "probe-dhcp", false, "require a DHCP answer on the first interface before writing the config")
	flags.BoolVar(&legacyFormatFlag, "legacy-format", false, "write the file byte-identical to older calm releases (trailing space after addresses:, explicit nameservers as [a,b,])")
}
