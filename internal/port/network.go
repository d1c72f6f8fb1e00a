// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"net"

	"netifctl/internal/types"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for kernel link and address operations.
// This interface abstracts netlink requests; all methods resolve the link
// by interface name so callers never hold kernel state across calls.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name.
	// A missing device is reported as types.ErrNotFound.
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// CreateLink requests kernel creation of a virtual device of the given kind
	CreateLink(interfaceName string, kind types.Kind) error

	// DeleteLink requests kernel deletion of the device
	DeleteLink(interfaceName string) error

	// SetLinkUp brings the interface up
	SetLinkUp(interfaceName string) error

	// SetLinkDown takes the interface down
	SetLinkDown(interfaceName string) error

	// SetHardwareAddr changes the interface MAC address
	SetHardwareAddr(interfaceName string, addr net.HardwareAddr) error

	// SetMaster enslaves member to the named bridge
	SetMaster(memberName, masterName string) error

	// SetNoMaster clears the member's bridge-master association
	SetNoMaster(memberName string) error

	// ListAddresses returns addresses of the given netlink family
	// configured on the interface
	ListAddresses(interfaceName string, family int) ([]netlink.Addr, error)

	// AddAddress adds a CIDR-notation address to the interface
	AddAddress(interfaceName, cidr string) error

	// DeleteAddress removes a CIDR-notation address from the interface
	DeleteAddress(interfaceName, cidr string) error
}
