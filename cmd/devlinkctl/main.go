package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "devlinkctl",
		Short: "CLI client for the devlink REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "devlink service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", os.Getenv("DEVLINK_TOKEN"), "Auth token (defaults to DEVLINK_TOKEN)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
