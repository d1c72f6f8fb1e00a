package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netifctl",
	Short: "netifctl applies typed, validated network interface configuration",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
