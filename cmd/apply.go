package cmd

import (
	"fmt"

	"netifctl/internal/adapter/dhclient"
	"netifctl/internal/adapter/iface"
	"netifctl/internal/adapter/infrastructure/daemon"
	"netifctl/internal/adapter/infrastructure/ethtool"
	"netifctl/internal/adapter/infrastructure/file"
	infraNetlink "netifctl/internal/adapter/infrastructure/netlink"
	"netifctl/internal/adapter/infrastructure/sysfs"
	"netifctl/internal/pkg/config"
	"netifctl/internal/pkg/logging"
	"netifctl/internal/types"

	"github.com/spf13/cobra"
)

var configFlag string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply interface configuration from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)
		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Applying interface configuration")

		deps := iface.Deps{
			Network:    infraNetlink.NewManagerAdapter(),
			Attrs:      sysfs.New(),
			Files:      file.NewManagerAdapter(),
			Supervisor: daemon.NewSupervisorAdapter(),
			DHCP: dhclient.Options{
				BasePath: cfg.DHCPClient.BasePath,
				Binary:   cfg.DHCPClient.Binary,
				Hostname: cfg.DHCPClient.Hostname,
			},
		}
		if hw, err := ethtool.New(); err == nil {
			deps.Hardware = hw
			defer hw.Close()
		}

		failed := 0
		for name, ifaceConfig := range cfg.Interfaces {
			if err := applyInterface(name, ifaceConfig, deps); err != nil {
				logger.WithField("interface", name).WithError(err).Error("Failed to apply interface configuration")
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d interfaces failed", failed, len(cfg.Interfaces))
		}
		logger.WithField("interface_count", len(cfg.Interfaces)).Info("All interfaces configured")
		return nil
	},
}

// applyInterface pushes one interface's desired configuration into the
// kernel, in dependency order: bind/create first, attributes and addresses
// next, DHCP and admin state last.
func applyInterface(name string, cfg config.InterfaceConfig, deps iface.Deps) error {
	handle, err := iface.New(name, types.Kind(cfg.Kind), deps)
	if err != nil {
		return err
	}

	if cfg.MAC != "" {
		if err := handle.SetMAC(cfg.MAC); err != nil {
			return err
		}
	}
	if cfg.MTU != nil {
		if err := handle.SetMTU(*cfg.MTU); err != nil {
			return err
		}
	}
	if cfg.Alias != "" {
		if err := handle.SetAlias(cfg.Alias); err != nil {
			return err
		}
	}
	if cfg.LinkDetect != nil {
		if err := handle.SetLinkDetect(*cfg.LinkDetect); err != nil {
			return err
		}
	}
	if cfg.ARPCacheTimeout != nil {
		if err := handle.SetARPCacheTimeout(*cfg.ARPCacheTimeout); err != nil {
			return err
		}
	}

	for _, addr := range cfg.Addresses {
		if err := handle.AddAddress(addr); err != nil {
			return err
		}
	}

	if cfg.Bridge != nil {
		if err := applyBridge(handle, cfg.Bridge); err != nil {
			return err
		}
	}

	if err := applyDHCP(handle, types.FamilyV4, cfg.DHCP); err != nil {
		return err
	}
	if err := applyDHCP(handle, types.FamilyV6, cfg.DHCPv6); err != nil {
		return err
	}

	if cfg.State != "" {
		if err := handle.SetState(cfg.State); err != nil {
			return err
		}
	}
	return nil
}

func applyBridge(handle *iface.Interface, cfg *config.BridgeConfig) error {
	br, err := handle.Bridge()
	if err != nil {
		return err
	}

	if cfg.AgeingTime != nil {
		if err := br.SetAgeingTime(*cfg.AgeingTime); err != nil {
			return err
		}
	}
	if cfg.ForwardDelay != nil {
		if err := br.SetForwardDelay(*cfg.ForwardDelay); err != nil {
			return err
		}
	}
	if cfg.HelloTime != nil {
		if err := br.SetHelloTime(*cfg.HelloTime); err != nil {
			return err
		}
	}
	if cfg.MaxAge != nil {
		if err := br.SetMaxAge(*cfg.MaxAge); err != nil {
			return err
		}
	}
	if cfg.Priority != nil {
		if err := br.SetPriority(*cfg.Priority); err != nil {
			return err
		}
	}
	if cfg.STP != nil {
		if err := br.SetSTPState(*cfg.STP); err != nil {
			return err
		}
	}
	if cfg.MulticastQuerier != nil {
		if err := br.SetMulticastQuerier(*cfg.MulticastQuerier); err != nil {
			return err
		}
	}

	for _, p := range cfg.Ports {
		if err := br.AddPort(p.Name); err != nil {
			return err
		}
		if p.Cost != nil {
			if err := br.SetPathCost(p.Name, *p.Cost); err != nil {
				return err
			}
		}
		if p.Priority != nil {
			if err := br.SetPortPriority(p.Name, *p.Priority); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyDHCP reconciles the lease controller with the desired flag:
// activate when wanted and inactive, deactivate when unwanted. Both
// directions are idempotent.
func applyDHCP(handle *iface.Interface, family types.Family, want bool) error {
	ctrl := handle.DHCP(family)
	switch {
	case want && !ctrl.Active():
		return ctrl.Activate()
	case !want:
		return ctrl.Deactivate()
	default:
		return nil
	}
}

func init() {
	applyCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := applyCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(applyCmd)
}
