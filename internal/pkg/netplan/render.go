// Package netplan renders and parses the netplan document managed by calm.
package netplan

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const (
	// DHCPInterfaceName is the set-name given to the first discovered interface.
	DHCPInterfaceName = "calm0"
	// StaticInterfaceName is the set-name given to the second discovered interface.
	StaticInterfaceName = "calm1"
)

var documentTemplate = template.Must(template.New("netplan").Parse(`network:
  version: 2
  renderer: networkd
  ethernets:
    lan:
      match:
        macaddress: {{ .DHCPMAC }}
      dhcp4: true
      set-name: ` + DHCPInterfaceName + `
    staticlan:
      match:
        macaddress: {{ .StaticMAC }}
      set-name: ` + StaticInterfaceName + `
      addresses:{{ if .LegacyLayout }} {{ end }}
        - {{ .StaticIP }}
      gateway4: {{ .Gateway }}
      nameservers:
        addresses: {{ .NameserverList }}
`))

// Params are the values substituted into the document.
type Params struct {
	DHCPMAC     string
	StaticMAC   string
	StaticIP    string
	Gateway     string
	Nameservers []string

	// TrailingComma renders "[a,b,]" instead of "[a,b]". Older calm deployments
	// wrote the list that way; YAML flow sequences accept both.
	TrailingComma bool

	// LegacyLayout keeps the trailing space after the static "addresses:" key
	// that older releases emitted, so their files compare byte-identical.
	LegacyLayout bool
}

// NameserverList renders the nameservers as a YAML flow sequence.
func (p Params) NameserverList() string {
	if len(p.Nameservers) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[")
	for i, ns := range p.Nameservers {
		b.WriteString(ns)
		if i < len(p.Nameservers)-1 || p.TrailingComma {
			b.WriteString(",")
		}
	}
	b.WriteString("]")
	return b.String()
}

// Render fills the document template. Equal params always give equal output.
func Render(p Params) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed to render netplan config: %w", err)
	}
	return buf.Bytes(), nil
}
