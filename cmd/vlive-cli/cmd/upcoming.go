package cmd

import (
	"log"
	"vlivego/cmd/vlive-cli/utils"
	"vlivego/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(upcomingCmd)
	upcomingCmd.Flags().StringVarP(&upcomingDate, "date", "d", "", "list for this date (yyyyMMdd)")
}

var upcomingDate string

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Lists upcoming and live videos.",
	Run: func(cmd *cobra.Command, args []string) {
		date := upcomingDate
		if date == "" {
			// the listing is in KST regardless of where we run
			date = timezone.DateStamp(timezone.Now())
		}

		items, err := client.UpcomingList(cmd.Context(), date, false)
		if err != nil {
			log.Fatal(err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Time", "Type", "Channel", "Title", "Product"})
		for _, item := range items {
			t.AppendRow(table.Row{
				item.Time,
				item.Type,
				item.ChannelName,
				item.Name,
				item.Product,
			})
		}
		t.Render()
	},
}
