//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
  format: compact

dhclient:
  base_path: /run/dhclient
  hostname: vyhost

interfaces:
  eth0:
    mtu: 1400
    mac: "00:90:43:fe:fe:1b"
    alias: uplink
    state: up
    link_detect: 1
    arp_cache_timeout: 30
    addresses:
      - 192.0.2.10/24
      - 2001:db8::10/64
    dhcp: false
    dhcpv6: true
  br0:
    kind: bridge
    state: up
    bridge:
      stp: 1
      forward_delay: 15
      ports:
        - name: eth1
          cost: 100
        - name: eth2
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/run/dhclient", cfg.DHCPClient.BasePath)
		assert.Equal(t, "vyhost", cfg.DHCPClient.Hostname)

		eth0, ok := cfg.GetInterfaceConfig("eth0")
		require.True(t, ok)
		require.NotNil(t, eth0.MTU)
		assert.Equal(t, 1400, *eth0.MTU)
		assert.Equal(t, "uplink", eth0.Alias)
		assert.True(t, eth0.DHCPv6)
		assert.False(t, eth0.DHCP)
		assert.Len(t, eth0.Addresses, 2)

		br0, ok := cfg.GetInterfaceConfig("br0")
		require.True(t, ok)
		require.NotNil(t, br0.Bridge)
		require.NotNil(t, br0.Bridge.STP)
		assert.Equal(t, 1, *br0.Bridge.STP)
		require.Len(t, br0.Bridge.Ports, 2)
		assert.Equal(t, "eth1", br0.Bridge.Ports[0].Name)
		require.NotNil(t, br0.Bridge.Ports[0].Cost)
		assert.Equal(t, 100, *br0.Bridge.Ports[0].Cost)
		assert.Nil(t, br0.Bridge.Ports[1].Cost)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfig(t, "interfaces: [not: a: map")
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("UnknownInterface", func(t *testing.T) {
		path := writeConfig(t, "interfaces:\n  eth0: {}\n")
		cfg, err := Load(path)
		require.NoError(t, err)

		_, ok := cfg.GetInterfaceConfig("eth9")
		assert.False(t, ok)
	})
}

func TestConfig_Validate(t *testing.T) {
	intp := func(v int) *int { return &v }

	valid := func() *Config {
		return &Config{
			Interfaces: map[string]InterfaceConfig{
				"eth0": {State: "up", MTU: intp(1500)},
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("NoInterfaces", func(t *testing.T) {
		cfg := &Config{}
		assert.EqualError(t, cfg.Validate(), "no interfaces configured")
	})

	t.Run("UnsupportedKind", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["tap0"] = InterfaceConfig{Kind: "tap"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported kind")
	})

	t.Run("InvalidState", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["eth0"] = InterfaceConfig{State: "enabled"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("MTUOutOfRange", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["eth0"] = InterfaceConfig{MTU: intp(9001)}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mtu must be between 68 and 9000")
	})

	t.Run("LinkDetectOutOfRange", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["eth0"] = InterfaceConfig{LinkDetect: intp(3)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("InvalidAddress", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["eth0"] = InterfaceConfig{Addresses: []string{"192.0.2.10"}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid address")
	})

	t.Run("BridgeSettingsOnNonBridge", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["eth0"] = InterfaceConfig{Bridge: &BridgeConfig{}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bridge settings require kind bridge")
	})

	t.Run("BridgeSTPOutOfRange", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["br0"] = InterfaceConfig{
			Kind:   "bridge",
			Bridge: &BridgeConfig{STP: intp(2)},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("BridgePortWithoutName", func(t *testing.T) {
		cfg := valid()
		cfg.Interfaces["br0"] = InterfaceConfig{
			Kind:   "bridge",
			Bridge: &BridgeConfig{Ports: []BridgePortConfig{{Cost: intp(10)}}},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bridge port without a name")
	})
}
