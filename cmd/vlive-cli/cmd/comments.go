package cmd

import (
	"log"
	"vlivego/cmd/vlive-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commentsCmd)
	commentsCmd.Flags().IntVarP(&commentLimit, "limit", "n", 50, "maximum number of comments to list")
	commentsCmd.Flags().BoolVar(&starComments, "star", false, "list star comments instead")
}

var (
	commentLimit int
	starComments bool
)

var commentsCmd = &cobra.Command{
	Use:   "comments <post-id>",
	Short: "Lists the comments of a post.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			log.Fatal(err)
		}

		it := client.PostCommentsIter(cmd.Context(), args[0], session)
		if starComments {
			it = client.PostStarCommentsIter(cmd.Context(), args[0], session)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Author", "Written At", "Body"})
		count := 0
		for count < commentLimit {
			comment, ok := it.Next()
			if !ok {
				break
			}
			t.AppendRow(table.Row{
				comment.AuthorNickname(),
				comment.CreatedAt().Format("2006-01-02 15:04"),
				comment.Body(),
			})
			count++
		}
		if err := it.Err(); err != nil {
			log.Fatal(err)
		}
		t.Render()
	},
}
