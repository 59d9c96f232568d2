package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	// register
	var name, email string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email required")
			}
			resp, err := newClient().R().
				SetBody(map[string]string{"name": name, "email": email}).
				Post("/users")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	_ = registerCmd.MarkFlagRequired("email")
	usersCmd.AddCommand(registerCmd)

	// list (admin)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/users")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	usersCmd.AddCommand(listCmd)

	// promote (admin)
	promoteCmd := &cobra.Command{
		Use:   "promote USER_ID",
		Short: "Promote a user to admin (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Patch("/users/admin/" + args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	usersCmd.AddCommand(promoteCmd)

	rootCmd.AddCommand(usersCmd)
}
