package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
)

func newPostCmd(current func() (*App, error)) *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Inspect ingested drafts",
	}
	postCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one draft with its taxonomy and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			app, err := current()
			if err != nil {
				return err
			}
			post, err := app.Posts.GetPost(cmd.Context(), id)
			if errors.Is(err, appservices.ErrPostNotFound) {
				return fmt.Errorf("post %d not found", id)
			}
			if err != nil {
				return err
			}

			printf(cmd, "ID:       %d\n", post.ID)
			printf(cmd, "GUID:     %s\n", post.GUID)
			printf(cmd, "Title:    %s\n", post.Title)
			printf(cmd, "Status:   %s\n", post.Status)
			printf(cmd, "Author:   %s (%d)\n", post.Author, post.AuthorID)
			if !post.CreatedAt.IsZero() {
				printf(cmd, "Created:  %s\n", post.CreatedAt.Format(time.RFC3339))
			}
			if post.Category != nil {
				printf(cmd, "Category: %s\n", post.Category.Name)
			}
			if len(post.Tags) > 0 {
				names := make([]string, 0, len(post.Tags))
				for _, tag := range post.Tags {
					names = append(names, tag.Name)
				}
				printf(cmd, "Tags:     %s\n", strings.Join(names, ", "))
			}
			keys := make([]string, 0, len(post.Meta))
			for key := range post.Meta {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				printf(cmd, "Meta:     %s = %s\n", key, post.Meta[key])
			}
			printLine(cmd, "")
			printLine(cmd, post.Content)
			return nil
		},
	})
	postCmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of stored drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := current()
			if err != nil {
				return err
			}
			count, err := app.Posts.CountPosts(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%d\n", count)
			return nil
		},
	})
	return postCmd
}
