package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	adminCmd := &cobra.Command{Use: "admin", Short: "Administrator operations"}

	// login
	var adminKey string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange the admin key for a JWT",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			out, err := doPostJSON("/api/admin/login", map[string]interface{}{"adminKey": adminKey})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&adminKey, "key", "k", "", "Admin key (required)")
	_ = loginCmd.MarkFlagRequired("key")
	adminCmd.AddCommand(loginCmd)

	// analytics
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Fetch the platform analytics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := doGet("/api/admin/analytics")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	adminCmd.AddCommand(analyticsCmd)

	// risk-assessment
	riskCmd := &cobra.Command{
		Use:   "risk-assessment",
		Short: "Fetch the high-risk user report",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := doGet("/api/admin/users/risk-assessment")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	adminCmd.AddCommand(riskCmd)

	// alerts
	alertsCmd := &cobra.Command{Use: "alerts", Short: "Crisis alert operations"}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List crisis alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := doGet("/api/admin/crisis-alerts")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	alertsCmd.AddCommand(listCmd)

	var status, notes string
	reviewCmd := &cobra.Command{
		Use:   "review ALERT_ID",
		Short: "Mark an alert reviewed or resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"status": status}
			if notes != "" {
				payload["notes"] = notes
			}
			out, err := doPutJSON("/api/admin/crisis-alerts/"+args[0], payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, out)
			return nil
		},
	}
	reviewCmd.Flags().StringVarP(&status, "status", "s", "reviewed", "New status (reviewed|resolved)")
	reviewCmd.Flags().StringVarP(&notes, "notes", "n", "", "Review notes")
	alertsCmd.AddCommand(reviewCmd)

	adminCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(adminCmd)
}
