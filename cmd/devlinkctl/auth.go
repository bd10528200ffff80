package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var name, email, password string

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and print its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().
				SetBody(map[string]string{"name": name, "email": email, "password": password}).
				Post("/api/users"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)

	var loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().
				SetBody(map[string]string{"email": loginEmail, "password": loginPassword}).
				Post("/api/auth"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the current token",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/auth"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(whoamiCmd)
}
