// Package bridge exposes bridge-specific kernel attributes and port
// membership operations. It is a capability attached to interface handles
// of bridge kind, built entirely on the attribute store port.
package bridge

import (
	"fmt"
	"strconv"

	"netifctl/internal/pkg/logging"
	"netifctl/internal/port"
	"netifctl/internal/types"

	"github.com/sirupsen/logrus"
)

// Bridge provides spanning-tree and port operations for one bridge device.
type Bridge struct {
	name    string
	attrs   port.AttributeStore
	network port.NetworkManager
	log     *logrus.Entry
}

// New creates the bridge capability for the named device.
func New(name string, attrs port.AttributeStore, network port.NetworkManager) *Bridge {
	return &Bridge{
		name:    name,
		attrs:   attrs,
		network: network,
		log:     logging.WithComponentAndInterface("bridge", name),
	}
}

func (b *Bridge) attrPath(attr string) string {
	return fmt.Sprintf("/sys/class/net/%s/bridge/%s", b.name, attr)
}

func (b *Bridge) portPath(member, attr string) string {
	return fmt.Sprintf("/sys/class/net/%s/brif/%s/%s", b.name, member, attr)
}

// readSeconds reads a kernel timer attribute stored in centiseconds and
// returns whole seconds.
func (b *Bridge) readSeconds(attr string) (int, error) {
	raw, err := b.attrs.Read(b.attrPath(attr))
	if err != nil {
		return 0, err
	}
	cs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected %s value %q: %w", attr, raw, types.ErrIO)
	}
	return cs / 100, nil
}

func (b *Bridge) writeSeconds(attr string, seconds int) error {
	return b.attrs.Write(b.attrPath(attr), strconv.Itoa(seconds*100))
}

// AgeingTime returns the MAC address ageing time in seconds. Kernel default
// is 300.
func (b *Bridge) AgeingTime() (int, error) {
	return b.readSeconds("ageing_time")
}

// SetAgeingTime sets the MAC address ageing time in seconds.
func (b *Bridge) SetAgeingTime(seconds int) error {
	return b.writeSeconds("ageing_time", seconds)
}

// ForwardDelay returns the STP forwarding delay in seconds.
func (b *Bridge) ForwardDelay() (int, error) {
	return b.readSeconds("forward_delay")
}

// SetForwardDelay sets the STP forwarding delay in seconds.
func (b *Bridge) SetForwardDelay(seconds int) error {
	return b.writeSeconds("forward_delay", seconds)
}

// HelloTime returns the STP hello time in seconds.
func (b *Bridge) HelloTime() (int, error) {
	return b.readSeconds("hello_time")
}

// SetHelloTime sets the STP hello time in seconds.
func (b *Bridge) SetHelloTime(seconds int) error {
	return b.writeSeconds("hello_time", seconds)
}

// MaxAge returns the STP maximum message age in seconds.
func (b *Bridge) MaxAge() (int, error) {
	return b.readSeconds("max_age")
}

// SetMaxAge sets the STP maximum message age in seconds.
func (b *Bridge) SetMaxAge(seconds int) error {
	return b.writeSeconds("max_age", seconds)
}

// Priority returns the bridge priority.
func (b *Bridge) Priority() (int, error) {
	raw, err := b.attrs.Read(b.attrPath("priority"))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected priority value %q: %w", raw, types.ErrIO)
	}
	return v, nil
}

// SetPriority sets the bridge priority. The kernel enforces its own range.
func (b *Bridge) SetPriority(priority int) error {
	return b.attrs.Write(b.attrPath("priority"), strconv.Itoa(priority))
}

// STPState returns 1 if spanning tree is enabled, 0 otherwise.
func (b *Bridge) STPState() (int, error) {
	return b.readToggle("stp_state")
}

// SetSTPState enables (1) or disables (0) spanning tree.
func (b *Bridge) SetSTPState(state int) error {
	return b.writeToggle("stp_state", state)
}

// MulticastQuerier returns 1 if the bridge runs a multicast querier.
func (b *Bridge) MulticastQuerier() (int, error) {
	return b.readToggle("multicast_querier")
}

// SetMulticastQuerier enables (1) or disables (0) the multicast querier.
func (b *Bridge) SetMulticastQuerier(enable int) error {
	return b.writeToggle("multicast_querier", enable)
}

func (b *Bridge) readToggle(attr string) (int, error) {
	raw, err := b.attrs.Read(b.attrPath(attr))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected %s value %q: %w", attr, raw, types.ErrIO)
	}
	return v, nil
}

func (b *Bridge) writeToggle(attr string, value int) error {
	if value < 0 || value > 1 {
		return &types.ValidationError{
			Field:      attr,
			Value:      strconv.Itoa(value),
			Constraint: "must be 0 or 1",
		}
	}
	return b.attrs.Write(b.attrPath(attr), strconv.Itoa(value))
}

// AddPort enslaves the member interface to this bridge.
func (b *Bridge) AddPort(memberName string) error {
	if memberName == "" {
		return &types.ValidationError{Field: "port", Constraint: "no member interface specified"}
	}
	b.log.WithField("port", memberName).Info("Adding bridge port")
	return b.network.SetMaster(memberName, b.name)
}

// DeletePort removes the member interface from this bridge.
func (b *Bridge) DeletePort(memberName string) error {
	if memberName == "" {
		return &types.ValidationError{Field: "port", Constraint: "no member interface specified"}
	}
	b.log.WithField("port", memberName).Info("Removing bridge port")
	return b.network.SetNoMaster(memberName)
}

// SetPathCost sets the STP path cost of a member port. No range validation
// is done here; out-of-range values surface as kernel write errors.
func (b *Bridge) SetPathCost(memberName string, cost int) error {
	if memberName == "" {
		return &types.ValidationError{Field: "port", Constraint: "no member interface specified"}
	}
	return b.attrs.Write(b.portPath(memberName, "path_cost"), strconv.Itoa(cost))
}

// SetPortPriority sets the STP priority of a member port. The kernel
// enforces its own limits.
func (b *Bridge) SetPortPriority(memberName string, priority int) error {
	if memberName == "" {
		return &types.ValidationError{Field: "port", Constraint: "no member interface specified"}
	}
	return b.attrs.Write(b.portPath(memberName, "priority"), strconv.Itoa(priority))
}
