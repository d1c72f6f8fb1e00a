// Package iface provides the interface handle: typed, validated access to
// kernel network device attributes, idempotent address management, and
// per-family DHCP client lifecycle, composed from infrastructure ports.
package iface

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"netifctl/internal/adapter/bridge"
	"netifctl/internal/adapter/dhclient"
	"netifctl/internal/pkg/logging"
	"netifctl/internal/port"
	"netifctl/internal/types"

	"github.com/sirupsen/logrus"
)

// Deps are the infrastructure ports an interface handle operates through.
type Deps struct {
	Network    port.NetworkManager
	Attrs      port.AttributeStore
	Files      port.FileManager
	Supervisor port.Supervisor

	// Hardware is optional; LinkInfo fails when absent.
	Hardware port.HardwareInfo

	// DHCP configures the per-family lease controllers.
	DHCP dhclient.Options
}

// Interface is a handle on one kernel network device. The name is immutable
// once bound; every operation resolves live kernel state, nothing is cached.
type Interface struct {
	name string
	kind types.Kind
	deps Deps

	dhcp4 *dhclient.Controller
	dhcp6 *dhclient.Controller

	log *logrus.Entry
}

// New binds a handle to an existing device, or requests kernel creation of
// a virtual device of the given kind if the name does not resolve. Binding
// a missing device without a kind fails with types.ErrNotFound.
func New(name string, kind types.Kind, deps Deps) (*Interface, error) {
	if name == "" {
		return nil, &types.ValidationError{Field: "interface", Constraint: "name must not be empty"}
	}

	link, err := deps.Network.GetLinkByName(name)
	switch {
	case err == nil:
		if kind == "" {
			kind = kindFromLinkType(link.Type())
		}
	case errors.Is(err, types.ErrNotFound):
		if kind == "" || kind == types.KindPhysical {
			return nil, fmt.Errorf("interface %q does not exist: %w", name, types.ErrNotFound)
		}
		if err := deps.Network.CreateLink(name, kind); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	i := &Interface{
		name: name,
		kind: kind,
		deps: deps,
		log:  logging.WithComponentAndInterface("iface", name),
	}
	cdeps := dhclient.Deps{Files: deps.Files, Supervisor: deps.Supervisor, Attrs: deps.Attrs}
	i.dhcp4 = dhclient.New(name, types.FamilyV4, cdeps, deps.DHCP)
	i.dhcp6 = dhclient.New(name, types.FamilyV6, cdeps, deps.DHCP)
	return i, nil
}

// Name returns the device name the handle is bound to.
func (i *Interface) Name() string { return i.name }

// Kind returns the device kind.
func (i *Interface) Kind() types.Kind { return i.kind }

// DHCP returns the lease controller for the given address family.
func (i *Interface) DHCP(family types.Family) *dhclient.Controller {
	if family == types.FamilyV6 {
		return i.dhcp6
	}
	return i.dhcp4
}

// Bridge returns the bridge capability. Only handles of bridge kind carry
// it.
func (i *Interface) Bridge() (*bridge.Bridge, error) {
	if i.kind != types.KindBridge {
		return nil, &types.ValidationError{
			Field:      "interface",
			Value:      i.name,
			Constraint: "not a bridge",
		}
	}
	return bridge.New(i.name, i.deps.Attrs, i.deps.Network), nil
}

// Remove tears down both DHCP controllers and then requests kernel deletion
// of the device. The handle must be discarded afterwards; operations on a
// removed device fail at the kernel level.
func (i *Interface) Remove() error {
	if err := i.dhcp4.Deactivate(); err != nil {
		return err
	}
	if err := i.dhcp6.Deactivate(); err != nil {
		return err
	}
	i.log.Info("Removing interface")
	return i.deps.Network.DeleteLink(i.name)
}

// MTU returns the interface MTU in bytes.
func (i *Interface) MTU() (int, error) {
	raw, err := i.deps.Attrs.Read(i.sysfsPath("mtu"))
	if err != nil {
		return 0, err
	}
	mtu, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected mtu value %q: %w", raw, types.ErrIO)
	}
	return mtu, nil
}

// SetMTU sets the interface MTU in bytes. Valid range is 68 to 9000.
func (i *Interface) SetMTU(mtu int) error {
	if mtu < 68 || mtu > 9000 {
		return &types.ValidationError{
			Field:      "mtu",
			Value:      strconv.Itoa(mtu),
			Constraint: "invalid MTU size: must be between 68 and 9000",
		}
	}
	return i.deps.Attrs.Write(i.sysfsPath("mtu"), strconv.Itoa(mtu))
}

// MAC returns the interface hardware address.
func (i *Interface) MAC() (string, error) {
	return i.deps.Attrs.Read(i.sysfsPath("address"))
}

// SetMAC validates and sets the interface hardware address. Multicast,
// all-zero and VRRP-reserved addresses are rejected. There is no sysfs
// write path for this attribute, so the change goes through netlink.
func (i *Interface) SetMAC(mac string) error {
	hw, err := validateMAC(mac)
	if err != nil {
		return err
	}
	return i.deps.Network.SetHardwareAddr(i.name, hw)
}

// Alias returns the interface alias text.
func (i *Interface) Alias() (string, error) {
	return i.deps.Attrs.Read(i.sysfsPath("ifalias"))
}

// SetAlias sets the interface alias text. An empty alias is written as a
// single NUL byte, the kernel convention for clearing it.
func (i *Interface) SetAlias(alias string) error {
	if alias == "" {
		alias = "\x00"
	}
	return i.deps.Attrs.Write(i.sysfsPath("ifalias"), alias)
}

// State returns the operational state as reported by the kernel.
func (i *Interface) State() (string, error) {
	return i.deps.Attrs.Read(i.sysfsPath("operstate"))
}

// SetState enables ("up") or disables ("down") the interface. There is no
// sysfs write path for this, so the change goes through netlink.
func (i *Interface) SetState(state string) error {
	switch state {
	case "up":
		return i.deps.Network.SetLinkUp(i.name)
	case "down":
		return i.deps.Network.SetLinkDown(i.name)
	default:
		return &types.ValidationError{
			Field:      "state",
			Value:      state,
			Constraint: `must be "up" or "down"`,
		}
	}
}

// LinkDetect returns the kernel's behavior for packets received while the
// interface is down: 0 accept, 1 ignore when down, 2 ignore when down or
// without carrier.
func (i *Interface) LinkDetect() (int, error) {
	raw, err := i.deps.Attrs.Read(i.linkFilterPath())
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected link_filter value %q: %w", raw, types.ErrIO)
	}
	return v, nil
}

// SetLinkDetect configures handling of packets received on a down
// interface. Valid values are 0, 1 and 2.
func (i *Interface) SetLinkDetect(mode int) error {
	if mode < 0 || mode > 2 {
		return &types.ValidationError{
			Field:      "link_detect",
			Value:      strconv.Itoa(mode),
			Constraint: "must be 0, 1 or 2",
		}
	}
	return i.deps.Attrs.Write(i.linkFilterPath(), strconv.Itoa(mode))
}

// ARPCacheTimeout returns the ARP cache timeout in seconds. The kernel
// stores milliseconds.
func (i *Interface) ARPCacheTimeout() (int, error) {
	raw, err := i.deps.Attrs.Read(i.arpTimeoutPath())
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected base_reachable_time_ms value %q: %w", raw, types.ErrIO)
	}
	return ms / 1000, nil
}

// SetARPCacheTimeout sets the ARP cache timeout in seconds.
func (i *Interface) SetARPCacheTimeout(seconds int) error {
	return i.deps.Attrs.Write(i.arpTimeoutPath(), strconv.Itoa(seconds*1000))
}

// LinkInfo returns L1 link settings via the hardware info port.
func (i *Interface) LinkInfo() (*types.LinkInfo, error) {
	if i.deps.Hardware == nil {
		return nil, fmt.Errorf("hardware info for %s: %w", i.name, types.ErrNotFound)
	}
	return i.deps.Hardware.LinkInfo(i.name)
}

func (i *Interface) sysfsPath(attr string) string {
	return fmt.Sprintf("/sys/class/net/%s/%s", i.name, attr)
}

func (i *Interface) linkFilterPath() string {
	return fmt.Sprintf("/proc/sys/net/ipv4/conf/%s/link_filter", i.name)
}

func (i *Interface) arpTimeoutPath() string {
	return fmt.Sprintf("/proc/sys/net/ipv4/neigh/%s/base_reachable_time_ms", i.name)
}

// validateMAC checks the colon-separated hex form and rejects multicast,
// all-zero and VRRP-reserved (00:00:5e:00:01:xx) addresses. Octets are
// parsed as hex and compared numerically, so "0:0:5E:0:1:1" and
// "00:00:5e:00:01:01" are both caught.
func validateMAC(mac string) (net.HardwareAddr, error) {
	octets := strings.Split(mac, ":")
	if len(octets) != 6 {
		return nil, &types.ValidationError{
			Field:      "mac",
			Value:      mac,
			Constraint: fmt.Sprintf("wrong number of MAC octets: %d", len(octets)),
		}
	}

	hw := make(net.HardwareAddr, 6)
	sum := 0
	for n, octet := range octets {
		v, err := strconv.ParseUint(octet, 16, 8)
		if err != nil {
			return nil, &types.ValidationError{
				Field:      "mac",
				Value:      mac,
				Constraint: fmt.Sprintf("octet %q is not a hex byte", octet),
			}
		}
		hw[n] = byte(v)
		sum += int(v)
	}

	if hw[0]&1 == 1 {
		return nil, &types.ValidationError{Field: "mac", Value: mac, Constraint: "is a multicast MAC address"}
	}
	if sum == 0 {
		return nil, &types.ValidationError{Field: "mac", Value: mac, Constraint: "00:00:00:00:00:00 is not a valid MAC address"}
	}
	if hw[0] == 0x00 && hw[1] == 0x00 && hw[2] == 0x5e && hw[3] == 0x00 && hw[4] == 0x01 {
		return nil, &types.ValidationError{Field: "mac", Value: mac, Constraint: "is a VRRP MAC address"}
	}
	return hw, nil
}

// kindFromLinkType maps netlink link types onto device kinds. Plain
// hardware devices report "device".
func kindFromLinkType(linkType string) types.Kind {
	switch linkType {
	case "bridge":
		return types.KindBridge
	case "dummy":
		return types.KindDummy
	case "device":
		return types.KindPhysical
	default:
		return types.Kind(linkType)
	}
}
