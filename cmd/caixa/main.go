package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/caixa-inc/caixa/internal/interfaces/cli/migrate"
	"github.com/caixa-inc/caixa/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caixa",
		Short: "Caixa - subscription checkout backend",
		Long:  `Caixa is a subscription checkout backend with plans, coupons and a simulated card gateway.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
