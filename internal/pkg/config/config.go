// Package config loads and validates the declarative YAML interface
// configuration consumed by the apply command.
package config

import (
	"fmt"
	"net"
	"os"

	"netifctl/internal/pkg/logging"
	"netifctl/internal/types"

	"gopkg.in/yaml.v3"
)

// BridgePortConfig configures one member port of a bridge.
type BridgePortConfig struct {
	Name     string `yaml:"name"`
	Cost     *int   `yaml:"cost,omitempty"`
	Priority *int   `yaml:"priority,omitempty"`
}

// BridgeConfig holds bridge-specific settings. All timer values are in
// seconds.
type BridgeConfig struct {
	STP              *int               `yaml:"stp,omitempty"`
	AgeingTime       *int               `yaml:"ageing_time,omitempty"`
	ForwardDelay     *int               `yaml:"forward_delay,omitempty"`
	HelloTime        *int               `yaml:"hello_time,omitempty"`
	MaxAge           *int               `yaml:"max_age,omitempty"`
	Priority         *int               `yaml:"priority,omitempty"`
	MulticastQuerier *int               `yaml:"multicast_querier,omitempty"`
	Ports            []BridgePortConfig `yaml:"ports,omitempty"`
}

// InterfaceConfig represents the desired configuration of one interface.
type InterfaceConfig struct {
	Kind            string        `yaml:"kind,omitempty"`
	MTU             *int          `yaml:"mtu,omitempty"`
	MAC             string        `yaml:"mac,omitempty"`
	Alias           string        `yaml:"alias,omitempty"`
	State           string        `yaml:"state,omitempty"`
	LinkDetect      *int          `yaml:"link_detect,omitempty"`
	ARPCacheTimeout *int          `yaml:"arp_cache_timeout,omitempty"`
	Addresses       []string      `yaml:"addresses,omitempty"`
	DHCP            bool          `yaml:"dhcp,omitempty"`
	DHCPv6          bool          `yaml:"dhcpv6,omitempty"`
	Bridge          *BridgeConfig `yaml:"bridge,omitempty"`
}

// DHCPClientConfig configures the external dhclient lifecycle.
type DHCPClientConfig struct {
	BasePath string `yaml:"base_path,omitempty"`
	Binary   string `yaml:"binary,omitempty"`
	Hostname string `yaml:"hostname,omitempty"`
}

// Config represents the main configuration structure.
type Config struct {
	Logging    logging.LogConfig          `yaml:"logging"`
	DHCPClient DHCPClientConfig           `yaml:"dhclient"`
	Interfaces map[string]InterfaceConfig `yaml:"interfaces"`
}

// Load loads configuration from a YAML file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// GetInterfaceConfig returns the configuration for a specific interface.
func (c *Config) GetInterfaceConfig(interfaceName string) (InterfaceConfig, bool) {
	config, exists := c.Interfaces[interfaceName]
	return config, exists
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Interfaces) == 0 {
		return fmt.Errorf("no interfaces configured")
	}

	for name, iface := range c.Interfaces {
		if err := validateInterfaceConfig(name, iface); err != nil {
			return err
		}
	}
	return nil
}

var validKinds = map[string]bool{
	"":                         true,
	string(types.KindPhysical): true,
	string(types.KindLoopback): true,
	string(types.KindDummy):    true,
	string(types.KindBridge):   true,
}

func validateInterfaceConfig(name string, iface InterfaceConfig) error {
	if !validKinds[iface.Kind] {
		return fmt.Errorf("interface %s: unsupported kind %q", name, iface.Kind)
	}
	if iface.State != "" && iface.State != "up" && iface.State != "down" {
		return fmt.Errorf("interface %s: state must be \"up\" or \"down\"", name)
	}
	if iface.MTU != nil && (*iface.MTU < 68 || *iface.MTU > 9000) {
		return fmt.Errorf("interface %s: mtu must be between 68 and 9000", name)
	}
	if iface.LinkDetect != nil && (*iface.LinkDetect < 0 || *iface.LinkDetect > 2) {
		return fmt.Errorf("interface %s: link_detect must be 0, 1 or 2", name)
	}
	for _, addr := range iface.Addresses {
		if _, _, err := net.ParseCIDR(addr); err != nil {
			return fmt.Errorf("interface %s: invalid address %q", name, addr)
		}
	}
	if iface.Bridge != nil {
		if iface.Kind != string(types.KindBridge) {
			return fmt.Errorf("interface %s: bridge settings require kind bridge", name)
		}
		if err := validateBridgeConfig(name, iface.Bridge); err != nil {
			return err
		}
	}
	return nil
}

func validateBridgeConfig(name string, b *BridgeConfig) error {
	if b.STP != nil && (*b.STP < 0 || *b.STP > 1) {
		return fmt.Errorf("interface %s: bridge stp must be 0 or 1", name)
	}
	if b.MulticastQuerier != nil && (*b.MulticastQuerier < 0 || *b.MulticastQuerier > 1) {
		return fmt.Errorf("interface %s: bridge multicast_querier must be 0 or 1", name)
	}
	for _, p := range b.Ports {
		if p.Name == "" {
			return fmt.Errorf("interface %s: bridge port without a name", name)
		}
	}
	return nil
}
