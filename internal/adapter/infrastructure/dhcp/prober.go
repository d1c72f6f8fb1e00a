// Package dhcp provides the DHCPv4 prober adapter implementation.
package dhcp

import (
	"context"
	"fmt"
	"time"

	"netifctl/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// ProberAdapter is an adapter that implements the DHCPProber port using the
// insomniacslk/dhcp library. It performs a one-shot lease exchange to check
// whether a DHCP server answers on the interface's segment; the resulting
// lease is not applied anywhere.
type ProberAdapter struct{}

// Ensure ProberAdapter implements the DHCPProber port
var _ port.DHCPProber = (*ProberAdapter)(nil)

// NewProberAdapter creates a new DHCP prober adapter.
func NewProberAdapter() *ProberAdapter {
	return &ProberAdapter{}
}

// Probe performs the complete DHCP DISCOVER/OFFER/REQUEST/ACK sequence and
// returns the ACK.
func (p *ProberAdapter) Probe(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	lease, err := client.Request(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP probe failed: %w", err)
	}

	return lease.ACK, nil
}
