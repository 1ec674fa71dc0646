package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	userFlag  string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "wellnessctl",
		Short: "CLI client for the wellness service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Wellness service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Acting user ID (sent as X-User-ID)")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", os.Getenv("WELLNESSCTL_TOKEN"), "Admin JWT (defaults to WELLNESSCTL_TOKEN)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
