package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	menuCmd := &cobra.Command{Use: "menu", Short: "Menu operations"}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/menu")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	menuCmd.AddCommand(listCmd)

	// add (admin)
	var name, category, recipe, image string
	var price float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a menu item (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			resp, err := newClient().R().
				SetBody(map[string]any{
					"name": name, "category": category, "price": price,
					"recipe": recipe, "image": image,
				}).
				Post("/menu")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Item name (required)")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	addCmd.Flags().Float64VarP(&price, "price", "p", 0, "Price")
	addCmd.Flags().StringVar(&recipe, "recipe", "", "Recipe / description")
	addCmd.Flags().StringVar(&image, "image", "", "Image reference")
	_ = addCmd.MarkFlagRequired("name")
	menuCmd.AddCommand(addCmd)

	// remove (admin)
	removeCmd := &cobra.Command{
		Use:   "remove ITEM_ID",
		Short: "Remove a menu item (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Delete("/menu/" + args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	menuCmd.AddCommand(removeCmd)

	rootCmd.AddCommand(menuCmd)
}
