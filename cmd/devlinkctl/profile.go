package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	profileCmd := &cobra.Command{Use: "profile", Short: "Profile operations"}

	meCmd := &cobra.Command{
		Use:   "me",
		Short: "Show your own profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/profile/me"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	profileCmd.AddCommand(meCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/profile"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	profileCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show another user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/profile/user/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	profileCmd.AddCommand(getCmd)

	var status, skills, company, website, location, bio, githubUser string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"status": status, "skills": skills}
			if company != "" {
				payload["company"] = company
			}
			if website != "" {
				payload["website"] = website
			}
			if location != "" {
				payload["location"] = location
			}
			if bio != "" {
				payload["bio"] = bio
			}
			if githubUser != "" {
				payload["githubusername"] = githubUser
			}
			data, err := checkResp(newClient().R().SetBody(payload).Post("/api/profile"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	setCmd.Flags().StringVar(&status, "status", "", "Professional status (required)")
	setCmd.Flags().StringVar(&skills, "skills", "", "Comma-separated skills (required)")
	setCmd.Flags().StringVar(&company, "company", "", "Company")
	setCmd.Flags().StringVar(&website, "website", "", "Website URL")
	setCmd.Flags().StringVar(&location, "location", "", "Location")
	setCmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	setCmd.Flags().StringVar(&githubUser, "github", "", "GitHub username")
	_ = setCmd.MarkFlagRequired("status")
	_ = setCmd.MarkFlagRequired("skills")
	profileCmd.AddCommand(setCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account, profile, and posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Delete("/api/profile"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	profileCmd.AddCommand(deleteCmd)

	githubCmd := &cobra.Command{
		Use:   "github USERNAME",
		Short: "Show a user's latest GitHub repos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/profile/github/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	profileCmd.AddCommand(githubCmd)

	rootCmd.AddCommand(profileCmd)
}
