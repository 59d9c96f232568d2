package main

import (
	"github.com/spf13/cobra"
)

func init() {
	statsCmd := &cobra.Command{Use: "stats", Short: "Analytics (admin)"}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Revenue summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/admin-stats")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	statsCmd.AddCommand(adminCmd)

	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Category-wise order stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/order-stats")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	statsCmd.AddCommand(ordersCmd)

	rootCmd.AddCommand(statsCmd)
}
