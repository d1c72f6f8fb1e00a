// Package ethtool provides the hardware info adapter implementation.
package ethtool

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"netifctl/internal/port"
	"netifctl/internal/types"

	"github.com/safchain/ethtool"
)

// Adapter implements the HardwareInfo port using the safchain/ethtool
// library, falling back to sysfs for virtual NICs whose drivers do not
// implement the ethtool link settings ioctl.
type Adapter struct {
	handle    *ethtool.Ethtool
	sysfsRoot string
}

// Ensure Adapter implements the HardwareInfo port
var _ port.HardwareInfo = (*Adapter)(nil)

// New creates a hardware info adapter.
func New() (*Adapter, error) {
	h, err := ethtool.NewEthtool()
	if err != nil {
		return nil, fmt.Errorf("failed to open ethtool handle: %w", err)
	}
	return &Adapter{handle: h, sysfsRoot: "/"}, nil
}

// Close releases the ethtool handle.
func (a *Adapter) Close() {
	if a.handle != nil {
		a.handle.Close()
	}
}

// LinkInfo returns speed/duplex/autoneg for the interface.
func (a *Adapter) LinkInfo(interfaceName string) (*types.LinkInfo, error) {
	if a.handle == nil {
		return a.linkInfoFromSysfs(interfaceName)
	}

	settings, err := a.handle.GetLinkSettings(interfaceName)
	if err != nil {
		// virtio, veth, bridges and friends land here
		return a.linkInfoFromSysfs(interfaceName)
	}

	duplex := "unknown"
	switch settings.Duplex {
	case ethtool.DUPLEX_FULL:
		duplex = "full"
	case ethtool.DUPLEX_HALF:
		duplex = "half"
	}

	return &types.LinkInfo{
		Speed:   settings.Speed,
		Duplex:  duplex,
		Autoneg: settings.Autoneg != 0,
	}, nil
}

// linkInfoFromSysfs reads what little sysfs exposes. Speed reads as -1 on
// interfaces without a negotiated link.
func (a *Adapter) linkInfoFromSysfs(interfaceName string) (*types.LinkInfo, error) {
	info := &types.LinkInfo{Duplex: "unknown", Autoneg: true}

	base := filepath.Join(a.sysfsRoot, "sys/class/net", interfaceName)
	if data, err := os.ReadFile(filepath.Join(base, "speed")); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && v > 0 {
			info.Speed = uint32(v)
		}
	}
	if data, err := os.ReadFile(filepath.Join(base, "duplex")); err == nil {
		d := strings.TrimSpace(string(data))
		if d == "full" || d == "half" {
			info.Duplex = d
		}
	}
	return info, nil
}
