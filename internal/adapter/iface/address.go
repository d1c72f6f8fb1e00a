package iface

import (
	"fmt"
	"net"
	"strings"

	"netifctl/internal/types"

	"github.com/vishvananda/netlink"
)

// Addresses returns the CIDR-notation addresses currently bound to the
// interface as reported by the kernel, IPv4 entries before IPv6 entries,
// insertion-stable within each family. Nothing is cached; every call
// queries the live address table. IPv6 zone suffixes are stripped.
func (i *Interface) Addresses() ([]string, error) {
	var out []string
	for _, family := range []int{netlink.FAMILY_V4, netlink.FAMILY_V6} {
		addrs, err := i.deps.Network.ListAddresses(i.name, family)
		if err != nil {
			return nil, err
		}
		for _, a := range addrs {
			out = append(out, formatCIDR(a))
		}
	}
	return out, nil
}

// AddAddress adds an IP address to the interface. The address is only added
// if it is not already assigned, so the call is idempotent against the live
// set. A concurrent external add between query and mutation can still
// surface a duplicate error from the kernel.
func (i *Interface) AddAddress(cidr string) error {
	norm, err := normalizeCIDR(cidr)
	if err != nil {
		return err
	}
	assigned, err := i.hasAddress(norm)
	if err != nil {
		return err
	}
	if assigned {
		i.log.WithField("address", norm).Debug("Address already assigned, skipping")
		return nil
	}
	return i.deps.Network.AddAddress(i.name, norm)
}

// DeleteAddress removes an IP address from the interface. Removing an
// address that is not assigned is a no-op.
func (i *Interface) DeleteAddress(cidr string) error {
	norm, err := normalizeCIDR(cidr)
	if err != nil {
		return err
	}
	assigned, err := i.hasAddress(norm)
	if err != nil {
		return err
	}
	if !assigned {
		i.log.WithField("address", norm).Debug("Address not assigned, skipping")
		return nil
	}
	return i.deps.Network.DeleteAddress(i.name, norm)
}

func (i *Interface) hasAddress(cidr string) (bool, error) {
	addrs, err := i.Addresses()
	if err != nil {
		return false, err
	}
	for _, a := range addrs {
		if a == cidr {
			return true, nil
		}
	}
	return false, nil
}

// formatCIDR renders a kernel address entry as ip/prefixlen, dropping any
// zone suffix on link-local IPv6 addresses.
func formatCIDR(addr netlink.Addr) string {
	ones, _ := addr.IPNet.Mask.Size()
	ip := addr.IPNet.IP.String()
	if idx := strings.IndexByte(ip, '%'); idx >= 0 {
		ip = ip[:idx]
	}
	return fmt.Sprintf("%s/%d", ip, ones)
}

// normalizeCIDR canonicalizes a CIDR string so set membership compares on
// one representation.
func normalizeCIDR(cidr string) (string, error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", &types.ValidationError{
			Field:      "address",
			Value:      cidr,
			Constraint: "not a valid CIDR address",
		}
	}
	ones, _ := ipnet.Mask.Size()
	return fmt.Sprintf("%s/%d", ip.String(), ones), nil
}
