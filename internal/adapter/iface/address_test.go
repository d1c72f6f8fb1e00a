//go:build unit

package iface

import (
	"net"
	"testing"

	"netifctl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func addrEntry(t *testing.T, cidr string) netlink.Addr {
	t.Helper()
	addr, err := netlink.ParseAddr(cidr)
	require.NoError(t, err)
	return *addr
}

func TestInterface_Addresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestMocks(ctrl)
	handle := newBoundHandle(t, m)

	t.Run("V4BeforeV6", func(t *testing.T) {
		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V4).
			Return([]netlink.Addr{addrEntry(t, "192.0.2.10/24")}, nil)
		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V6).
			Return([]netlink.Addr{addrEntry(t, "2001:db8::10/64")}, nil)

		addrs, err := handle.Addresses()
		require.NoError(t, err)
		assert.Equal(t, []string{"192.0.2.10/24", "2001:db8::10/64"}, addrs)
	})

	t.Run("LinkLocalFormatted", func(t *testing.T) {
		linkLocal := netlink.Addr{IPNet: &net.IPNet{
			IP:   net.ParseIP("fe80::1"),
			Mask: net.CIDRMask(64, 128),
		}}

		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V4).
			Return(nil, nil)
		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V6).
			Return([]netlink.Addr{linkLocal}, nil)

		addrs, err := handle.Addresses()
		require.NoError(t, err)
		assert.Equal(t, []string{"fe80::1/64"}, addrs)
	})
}

func TestInterface_AddAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("NewAddressIsAdded", func(t *testing.T) {
		m := newTestMocks(ctrl)
		handle := newBoundHandle(t, m)

		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V4).Return(nil, nil)
		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V6).Return(nil, nil)
		m.network.EXPECT().AddAddress("eth0", "192.0.2.10/24").Return(nil)

		assert.NoError(t, handle.AddAddress("192.0.2.10/24"))
	})

	t.Run("AssignedAddressIsSkipped", func(t *testing.T) {
		m := newTestMocks(ctrl)
		handle := newBoundHandle(t, m)

		// no AddAddress expectation: the duplicate must not be re-added
		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V4).
			Return([]netlink.Addr{addrEntry(t, "192.0.2.10/24")}, nil)
		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V6).Return(nil, nil)

		assert.NoError(t, handle.AddAddress("192.0.2.10/24"))
	})

	t.Run("InvalidCIDR", func(t *testing.T) {
		m := newTestMocks(ctrl)
		handle := newBoundHandle(t, m)

		err := handle.AddAddress("192.0.2.10")
		assert.True(t, types.IsValidation(err))
	})
}

func TestInterface_DeleteAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("AssignedAddressIsRemoved", func(t *testing.T) {
		m := newTestMocks(ctrl)
		handle := newBoundHandle(t, m)

		m.network.EXPECT().
			ListAddresses("eth0", netlink.FAMILY_V4).
			Return([]netlink.Addr{addrEntry(t, "192.0.2.10/24")}, nil)
		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V6).Return(nil, nil)
		m.network.EXPECT().DeleteAddress("eth0", "192.0.2.10/24").Return(nil)

		assert.NoError(t, handle.DeleteAddress("192.0.2.10/24"))
	})

	t.Run("UnassignedAddressIsSkipped", func(t *testing.T) {
		m := newTestMocks(ctrl)
		handle := newBoundHandle(t, m)

		// no DeleteAddress expectation: nothing to remove
		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V4).Return(nil, nil)
		m.network.EXPECT().ListAddresses("eth0", netlink.FAMILY_V6).Return(nil, nil)

		assert.NoError(t, handle.DeleteAddress("192.0.2.10/24"))
	})
}
