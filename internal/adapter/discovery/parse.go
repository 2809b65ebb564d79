// Package discovery enumerates the network interfaces calm can configure.
package discovery

import (
	"regexp"
	"strings"

	"calmnetconfig/internal/pkg/logging"
	"calmnetconfig/internal/types"
)

// AwkProgram drops loopback and docker links from `ip -o link` output and
// reduces each remaining line to "<name>: <mac>".
const AwkProgram = `$2 != "lo:" && $2 != "docker:" && $2 !~ /docker.:/ {print $2, $(NF-2)}`

var dockerPattern = regexp.MustCompile(`docker.:`)

// Excluded applies the AwkProgram filter to a bare interface name.
func Excluded(name string) bool {
	field := name + ":"
	return field == "lo:" || field == "docker:" || dockerPattern.MatchString(field)
}

// ParseRecords turns filtered "<name>: <mac>" lines into records, keeping line order.
// Lines without the ": " separator are skipped.
func ParseRecords(output string) []types.InterfaceRecord {
	logger := logging.WithComponent("discovery")

	var records []types.InterfaceRecord
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, mac, ok := strings.Cut(line, ": ")
		if !ok || name == "" || mac == "" {
			logger.WithField("line", line).Warn("Skipping unparsable interface line")
			continue
		}
		records = append(records, types.InterfaceRecord{Name: name, MAC: strings.TrimSpace(mac)})
	}
	return records
}
