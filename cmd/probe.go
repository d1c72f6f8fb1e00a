package cmd

import (
	"fmt"
	"strings"
	"time"

	"netifctl/internal/adapter/infrastructure/dhcp"

	"github.com/spf13/cobra"
)

var probeTimeout time.Duration

// probe is a diagnostic: it runs a full DHCPv4 exchange without touching
// interface state, so an operator can check for a responsive server before
// switching an interface to DHCP.
var probeCmd = &cobra.Command{
	Use:   "probe <interface>",
	Short: "Probe for a DHCPv4 server on the interface's segment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prober := dhcp.NewProberAdapter()
		ack, err := prober.Probe(cmd.Context(), args[0], probeTimeout)
		if err != nil {
			return err
		}

		fmt.Printf("Offered:   %s\n", ack.YourIPAddr)
		if mask := ack.SubnetMask(); mask != nil {
			fmt.Printf("Netmask:   %s\n", mask)
		}
		if routers := ack.Router(); len(routers) > 0 {
			var s []string
			for _, r := range routers {
				s = append(s, r.String())
			}
			fmt.Printf("Routers:   %s\n", strings.Join(s, ", "))
		}
		if dns := ack.DNS(); len(dns) > 0 {
			var s []string
			for _, d := range dns {
				s = append(s, d.String())
			}
			fmt.Printf("DNS:       %s\n", strings.Join(s, ", "))
		}
		return nil
	},
}

func init() {
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 10*time.Second, "Probe timeout")
	rootCmd.AddCommand(probeCmd)
}
