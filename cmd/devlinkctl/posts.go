package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	postsCmd := &cobra.Command{Use: "posts", Short: "Post operations"}

	var text string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().
				SetBody(map[string]string{"text": text}).
				Post("/api/posts"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&text, "text", "x", "", "Post body (required)")
	_ = createCmd.MarkFlagRequired("text")
	postsCmd.AddCommand(createCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/posts"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get POST_ID",
		Short: "Get a post by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Get("/api/posts/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postsCmd.AddCommand(getCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete POST_ID",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Delete("/api/posts/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postsCmd.AddCommand(deleteCmd)

	likeCmd := &cobra.Command{
		Use:   "like POST_ID",
		Short: "Toggle your like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().Put("/api/posts/like/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postsCmd.AddCommand(likeCmd)

	var commentText string
	commentCmd := &cobra.Command{
		Use:   "comment POST_ID",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().
				SetBody(map[string]string{"text": commentText}).
				Post("/api/posts/comment/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	commentCmd.Flags().StringVarP(&commentText, "text", "x", "", "Comment body (required)")
	_ = commentCmd.MarkFlagRequired("text")
	postsCmd.AddCommand(commentCmd)

	uncommentCmd := &cobra.Command{
		Use:   "uncomment POST_ID COMMENT_ID",
		Short: "Remove a comment from a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkResp(newClient().R().
				Delete("/api/posts/comment/" + args[0] + "/" + args[1]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postsCmd.AddCommand(uncommentCmd)

	rootCmd.AddCommand(postsCmd)
}
