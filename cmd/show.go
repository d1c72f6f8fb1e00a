package cmd

import (
	"fmt"
	"strings"

	"netifctl/internal/adapter/iface"
	"netifctl/internal/adapter/infrastructure/daemon"
	"netifctl/internal/adapter/infrastructure/ethtool"
	"netifctl/internal/adapter/infrastructure/file"
	infraNetlink "netifctl/internal/adapter/infrastructure/netlink"
	"netifctl/internal/adapter/infrastructure/sysfs"
	"netifctl/internal/types"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show live state of a network interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps := iface.Deps{
			Network:    infraNetlink.NewManagerAdapter(),
			Attrs:      sysfs.New(),
			Files:      file.NewManagerAdapter(),
			Supervisor: daemon.NewSupervisorAdapter(),
		}
		if hw, err := ethtool.New(); err == nil {
			deps.Hardware = hw
			defer hw.Close()
		}

		handle, err := iface.New(args[0], "", deps)
		if err != nil {
			return err
		}

		fmt.Printf("Interface: %s (%s)\n", handle.Name(), handle.Kind())

		if state, err := handle.State(); err == nil {
			fmt.Printf("State:     %s\n", state)
		}
		if mtu, err := handle.MTU(); err == nil {
			fmt.Printf("MTU:       %d\n", mtu)
		}
		if mac, err := handle.MAC(); err == nil {
			fmt.Printf("MAC:       %s\n", mac)
		}
		if alias, err := handle.Alias(); err == nil && alias != "" {
			fmt.Printf("Alias:     %s\n", alias)
		}
		if addrs, err := handle.Addresses(); err == nil && len(addrs) > 0 {
			fmt.Printf("Addresses: %s\n", strings.Join(addrs, ", "))
		}
		if info, err := handle.LinkInfo(); err == nil {
			fmt.Printf("Link:      %d Mb/s, %s duplex, autoneg %v\n", info.Speed, info.Duplex, info.Autoneg)
		}
		for _, family := range []types.Family{types.FamilyV4, types.FamilyV6} {
			if handle.DHCP(family).Active() {
				fmt.Printf("DHCP:      %s client active\n", family)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
