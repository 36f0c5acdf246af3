package vlive

import (
	"bytes"
	"encoding/json"
	"strings"
	"vlivego/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// channelInfoFromPage digs the channel object out of the webpage's
// embedded preloaded-state script.
func channelInfoFromPage(body []byte) (map[string]any, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse channel page", Err: err}
	}

	var state map[string]any
	for _, script := range doc.Find("script").Nodes {
		text := htmlutil.GetText(script)
		if !strings.Contains(text, "__PRELOADED_STATE__") {
			continue
		}
		// the state assignment is followed by function declarations;
		// decode just the one JSON value
		start := strings.Index(text, "{")
		if start < 0 {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[start:]))
		err := dec.Decode(&state)
		if err != nil {
			return nil, &ParseError{Message: "failed to decode channel page state", Err: err}
		}
		break
	}
	if state == nil {
		return nil, &ParseError{Message: "channel page carries no preloaded state"}
	}

	outer, _ := state["channel"].(map[string]any)
	channel, ok := outer["channel"].(map[string]any)
	if !ok {
		return nil, &ParseError{Message: "channel page state carries no channel object"}
	}
	return channel, nil
}

// UpcomingVideo is one row of the upcoming listing.
type UpcomingVideo struct {
	// Seq is the video seq of the item.
	Seq string
	// Time is the display start time as printed on the page.
	Time string
	// ChannelSeq and ChannelName identify the origin channel; ChannelType
	// is "BASIC" or "PREMIUM" (membership).
	ChannelSeq  string
	ChannelName string
	ChannelType string
	// Name is the item title.
	Name string
	// Type is "VOD", "UPCOMING_VOD", "UPCOMING_LIVE" or "LIVE".
	Type string
	// Product is "NONE" for normal lives, "PAID" for paid product.
	Product string
}

// upcomingFromPage parses the upcoming webpage markup into items in page
// order. A page without the listing element is a *ParseError; a present
// but empty listing is an empty, non-nil slice.
func upcomingFromPage(body []byte) ([]UpcomingVideo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse upcoming page", Err: err}
	}

	list := doc.Find("ul.upcoming_list")
	if list.Length() == 0 {
		// maintenance and error pages serve markup without the listing;
		// an empty day still serves the (empty) list element
		return nil, &ParseError{Message: "upcoming page carries no listing"}
	}

	items := []UpcomingVideo{}
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		// replayed items carry a "replay" class on the row itself
		isReplay := strings.HasPrefix(li.AttrOr("class", ""), "replay")

		info := li.Find("a._title")
		itemType := info.AttrOr("data-ga-type", "")
		if itemType == "UPCOMING" {
			if isReplay {
				itemType += "_VOD"
			} else {
				itemType += "_LIVE"
			}
		}

		items = append(items, UpcomingVideo{
			Seq:         info.AttrOr("data-ga-seq", ""),
			Time:        li.Find("span.time").Text(),
			ChannelSeq:  info.AttrOr("data-ga-cseq", ""),
			ChannelName: info.AttrOr("data-ga-cname", ""),
			ChannelType: info.AttrOr("data-ga-ctype", ""),
			Name:        info.AttrOr("data-ga-name", ""),
			Type:        itemType,
			Product:     info.AttrOr("data-ga-product", ""),
		})
	})
	return items, nil
}
