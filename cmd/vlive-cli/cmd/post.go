package cmd

import (
	"fmt"
	"log"
	"vlivego/lib/vlive"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().BoolVar(&postAsHTML, "html", false, "render the post as standalone html")
}

var postAsHTML bool

var postCmd = &cobra.Command{
	Use:   "post <post-id>",
	Short: "Fetches one post and prints it.",
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
		post := client.NewPost(cmd.Context(), args[0], opts...)
		if len(post.Payload()) == 0 {
			log.Fatalf("could not load post %s", args[0])
		}

		if postAsHTML {
			fmt.Println(post.FormattedBody())
			return
		}
		fmt.Printf("%s\n", post.Title())
		fmt.Printf("by %s (%s) at %s\n\n", post.AuthorNickname(), post.ChannelName(), post.CreatedAt())
		fmt.Println(post.PlainBody())
	},
}
