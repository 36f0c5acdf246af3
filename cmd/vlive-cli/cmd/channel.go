package cmd

import (
	"fmt"
	"log"
	"vlivego/cmd/vlive-cli/utils"
	"vlivego/lib/textutil"
	"vlivego/lib/vlive"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.AddCommand(channelBoardsCmd)
	channelBoardsCmd.Flags().StringSliceVar(&boardFind, "find", nil, "only list boards whose title matches")
}

var boardFind []string

var channelCmd = &cobra.Command{
	Use:   "channel <channel-code>",
	Short: "Prints a channel's metadata.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			log.Fatal(err)
		}

		var opts []vlive.EntityOption
		if session != nil {
			opts = append(opts, vlive.WithSession(session))
		}
		channel := client.NewChannel(cmd.Context(), args[0], opts...)
		if len(channel.Payload()) == 0 {
			log.Fatalf("could not load channel %s", args[0])
		}

		fmt.Printf("%s (%s)\n", channel.Name(), channel.Code())
		fmt.Printf("members: %d, videos: %d\n", channel.MemberCount(), channel.VideoCount())
		if channel.Description() != "" {
			fmt.Println(channel.Description())
		}
	},
}

var channelBoardsCmd = &cobra.Command{
	Use:   "boards <channel-code>",
	Short: "Lists the boards of a channel.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := loadSession()
		if err != nil {
			log.Fatal(err)
		}

		var opts []vlive.EntityOption
		if session != nil {
			opts = append(opts, vlive.WithSession(session))
		}
		boards := client.NewGroupedBoards(cmd.Context(), args[0], opts...)

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Board", "Title", "Type", "Pay Required"})
		for _, board := range boards.Boards() {
			title, _ := board["title"].(string)
			if len(boardFind) > 0 && !textutil.MatchName(title, boardFind) {
				continue
			}
			t.AppendRow(table.Row{
				board["boardId"],
				board["title"],
				board["boardType"],
				board["payRequired"],
			})
		}
		t.Render()
	},
}
