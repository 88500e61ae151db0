package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/danahmadi/bookora_backend/cmd/http"
	systemcmd "github.com/danahmadi/bookora_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bookora",
	Short: "Bookora multi-tenant booking platform for service businesses.",
	Long: `Bookora is a multi-tenant booking platform for service businesses.
It connects businesses, their providers and their customers through one
unified deployment, with per-provider availability schedules at the core.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
