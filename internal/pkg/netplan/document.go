package netplan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the subset of the netplan schema calm writes.
type Document struct {
	Network Network `yaml:"network"`
}

type Network struct {
	Version   int                 `yaml:"version"`
	Renderer  string              `yaml:"renderer"`
	Ethernets map[string]Ethernet `yaml:"ethernets"`
}

type Ethernet struct {
	Match       Match        `yaml:"match"`
	DHCP4       bool         `yaml:"dhcp4,omitempty"`
	SetName     string       `yaml:"set-name,omitempty"`
	Addresses   []string     `yaml:"addresses,omitempty"`
	Gateway4    string       `yaml:"gateway4,omitempty"`
	Nameservers *Nameservers `yaml:"nameservers,omitempty"`
}

type Match struct {
	MACAddress string `yaml:"macaddress"`
}

type Nameservers struct {
	Addresses []string `yaml:"addresses"`
}

// Parse decodes a netplan document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse netplan config: %w", err)
	}
	return &doc, nil
}

// Verify checks that a parsed document carries exactly what p asked for.
// It catches values that break the YAML structure when substituted verbatim.
func (d *Document) Verify(p Params) error {
	lan, ok := d.Network.Ethernets["lan"]
	if !ok {
		return fmt.Errorf("netplan config has no lan ethernet")
	}
	if lan.Match.MACAddress != p.DHCPMAC || !lan.DHCP4 || lan.SetName != DHCPInterfaceName {
		return fmt.Errorf("netplan config lan ethernet does not match mac %s", p.DHCPMAC)
	}

	static, ok := d.Network.Ethernets["staticlan"]
	if !ok {
		return fmt.Errorf("netplan config has no staticlan ethernet")
	}
	if static.Match.MACAddress != p.StaticMAC || static.SetName != StaticInterfaceName {
		return fmt.Errorf("netplan config staticlan ethernet does not match mac %s", p.StaticMAC)
	}
	if len(static.Addresses) != 1 || static.Addresses[0] != p.StaticIP {
		return fmt.Errorf("netplan config address %v does not match %s", static.Addresses, p.StaticIP)
	}
	if static.Gateway4 != p.Gateway {
		return fmt.Errorf("netplan config gateway %q does not match %s", static.Gateway4, p.Gateway)
	}
	if static.Nameservers == nil || !equalStrings(static.Nameservers.Addresses, p.Nameservers) {
		return fmt.Errorf("netplan config nameservers do not match %v", p.Nameservers)
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
