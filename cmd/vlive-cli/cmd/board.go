package cmd

import (
	"log"
	"vlivego/cmd/vlive-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().IntVarP(&boardLimit, "limit", "n", 20, "maximum number of posts to list")
	boardCmd.Flags().BoolVar(&boardOldest, "oldest", false, "list oldest posts first")
}

var (
	boardLimit  int
	boardOldest bool
)

var boardCmd = &cobra.Command{
	Use:   "board <board-id> <channel-code>",
	Short: "Lists the posts of a channel board.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			log.Fatal(err)
		}

		it := client.BoardPostsIter(cmd.Context(), args[0], args[1], session, !boardOldest)

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Post", "Video"})
		count := 0
		for count < boardLimit {
			item, ok := it.Next()
			if !ok {
				break
			}
			t.AppendRow(table.Row{item.PostID(), item.HasOfficialVideo()})
			count++
		}
		if err := it.Err(); err != nil {
			log.Fatal(err)
		}
		t.Render()
	},
}
