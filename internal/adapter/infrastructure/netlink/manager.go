// Package netlink provides the network manager adapter implementation using
// the vishvananda/netlink library.
package netlink

import (
	"errors"
	"fmt"
	"net"

	"netifctl/internal/port"
	"netifctl/internal/types"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using
// vishvananda/netlink. All methods resolve the link by name so no kernel
// state is held between calls.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name. A missing device
// is reported as types.ErrNotFound.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("interface %s: %w", interfaceName, types.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// CreateLink requests kernel creation of a virtual device of the given kind.
func (n *ManagerAdapter) CreateLink(interfaceName string, kind types.Kind) error {
	attrs := netlink.NewLinkAttrs()
	attrs.Name = interfaceName

	var link netlink.Link
	switch kind {
	case types.KindBridge:
		link = &netlink.Bridge{LinkAttrs: attrs}
	case types.KindDummy:
		link = &netlink.Dummy{LinkAttrs: attrs}
	default:
		link = &netlink.GenericLink{LinkAttrs: attrs, LinkType: string(kind)}
	}

	if err := netlink.LinkAdd(link); err != nil {
		return fmt.Errorf("failed to create %s link %s: %w", kind, interfaceName, err)
	}
	return nil
}

// DeleteLink requests kernel deletion of the device.
func (n *ManagerAdapter) DeleteLink(interfaceName string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkDel(link); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", interfaceName, err)
	}
	return nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(interfaceName string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", interfaceName, err)
	}
	return nil
}

// SetLinkDown takes the interface down.
func (n *ManagerAdapter) SetLinkDown(interfaceName string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", interfaceName, err)
	}
	return nil
}

// SetHardwareAddr changes the interface MAC address. There is no sysfs
// write path for this attribute.
func (n *ManagerAdapter) SetHardwareAddr(interfaceName string, addr net.HardwareAddr) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetHardwareAddr(link, addr); err != nil {
		return fmt.Errorf("failed to set hardware address on %s: %w", interfaceName, err)
	}
	return nil
}

// SetMaster enslaves member to the named bridge.
func (n *ManagerAdapter) SetMaster(memberName, masterName string) error {
	member, err := n.GetLinkByName(memberName)
	if err != nil {
		return err
	}
	master, err := n.GetLinkByName(masterName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetMaster(member, master); err != nil {
		return fmt.Errorf("failed to set master %s on %s: %w", masterName, memberName, err)
	}
	return nil
}

// SetNoMaster clears the member's bridge-master association.
func (n *ManagerAdapter) SetNoMaster(memberName string) error {
	member, err := n.GetLinkByName(memberName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetNoMaster(member); err != nil {
		return fmt.Errorf("failed to clear master on %s: %w", memberName, err)
	}
	return nil
}

// ListAddresses returns addresses of the given netlink family configured on
// the interface.
func (n *ManagerAdapter) ListAddresses(interfaceName string, family int) ([]netlink.Addr, error) {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	addrs, err := netlink.AddrList(link, family)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", interfaceName, err)
	}
	return addrs, nil
}

// AddAddress adds a CIDR-notation address to the interface.
func (n *ManagerAdapter) AddAddress(interfaceName, cidr string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return &types.ValidationError{Field: "address", Value: cidr, Constraint: "not a valid CIDR address"}
	}
	if err := netlink.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("failed to add address %s to %s: %w", cidr, interfaceName, err)
	}
	return nil
}

// DeleteAddress removes a CIDR-notation address from the interface.
func (n *ManagerAdapter) DeleteAddress(interfaceName, cidr string) error {
	link, err := n.GetLinkByName(interfaceName)
	if err != nil {
		return err
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return &types.ValidationError{Field: "address", Value: cidr, Constraint: "not a valid CIDR address"}
	}
	if err := netlink.AddrDel(link, addr); err != nil {
		return fmt.Errorf("failed to delete address %s from %s: %w", cidr, interfaceName, err)
	}
	return nil
}
