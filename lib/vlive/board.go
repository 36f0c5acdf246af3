package vlive

import (
	"context"
	"vlivego/lib/envelope"

	"go.opentelemetry.io/otel/codes"
)

// BoardPostItem is one row of a board listing. The listing endpoint only
// returns the post id and whether an official video is attached; the full
// model is one ToEntity call away.
type BoardPostItem struct {
	client        *Client
	session       *Session
	postID        string
	officialVideo bool
}

func (b *BoardPostItem) PostID() string         { return b.postID }
func (b *BoardPostItem) HasOfficialVideo() bool { return b.officialVideo }

// ToEntity builds the matching model object: an OfficialVideoPost for
// video rows, a plain Post otherwise.
func (b *BoardPostItem) ToEntity(ctx context.Context) Entity {
	if b.officialVideo {
		return b.client.NewOfficialVideoPost(ctx, b.postID, WithSession(b.session))
	}
	return b.client.NewPost(ctx, b.postID, WithSession(b.session))
}

// BoardPage is one page of a board listing.
type BoardPage = envelope.Page[*BoardPostItem]

// BoardIter is a lazy walk over a board listing.
type BoardIter = envelope.Iter[*BoardPostItem]

// BoardPosts fetches one page of a board's posts. latest selects
// newest-first ordering.
func (c *Client) BoardPosts(ctx context.Context, boardID, channelCode string, session *Session, after string, latest, silent bool) (*BoardPage, error) {
	ctx, span := tracer.Start(ctx, "client:BoardPosts")
	defer span.End()

	ep := c.cfg.endpointBoardPosts(boardID, channelCode, after, latest)
	data, err := c.fetchNormalized(ctx, ep, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	page := &BoardPage{
		After: envelope.NextCursor(data),
		Raw:   data,
	}
	items, _ := data["data"].([]any)
	for _, item := range items {
		payload, ok := item.(map[string]any)
		if !ok {
			continue
		}
		postID, _ := payload["postId"].(string)
		_, hasVideo := payload["officialVideo"]
		page.Items = append(page.Items, &BoardPostItem{
			client:        c,
			session:       session,
			postID:        postID,
			officialVideo: hasVideo,
		})
	}
	return page, nil
}

// BoardPostsIter lazily walks every post of a board.
func (c *Client) BoardPostsIter(ctx context.Context, boardID, channelCode string, session *Session, latest bool) *BoardIter {
	return envelope.Iterate(func(after string) (*BoardPage, error) {
		return c.BoardPosts(ctx, boardID, channelCode, session, after, latest, false)
	})
}

// GroupedBoards is a cached model of a channel's board groups.
type GroupedBoards struct {
	cached
	client *Client
}

func (c *Client) NewGroupedBoards(ctx context.Context, channelCode string, opts ...EntityOption) *GroupedBoards {
	o := applyOptions(opts)
	g := &GroupedBoards{
		cached: cached{
			kind:    KindGroupedBoards,
			id:      channelCode,
			session: o.session,
		},
		client: c,
	}
	g.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.GroupedBoardsData(ctx, channelCode, g.session, true)
	}
	if o.payload != nil {
		g.adopt(o.payload)
	} else {
		g.refresh(ctx)
	}
	return g
}

func (g *GroupedBoards) Kind() Kind { return g.kind }
func (g *GroupedBoards) ID() string { return g.id }

func (g *GroupedBoards) Refresh(ctx context.Context) {
	g.refresh(ctx)
}

func (g *GroupedBoards) Payload() map[string]any {
	return g.payload()
}

// Groups returns the raw board groups in listing order.
func (g *GroupedBoards) Groups() []map[string]any {
	items, _ := g.lookup("data").([]any)
	var groups []map[string]any
	for _, item := range items {
		group, ok := item.(map[string]any)
		if !ok {
			continue
		}
		copied, _ := deepCopy(group).(map[string]any)
		groups = append(groups, copied)
	}
	return groups
}

// Boards flattens every group into one board list.
func (g *GroupedBoards) Boards() []map[string]any {
	var boards []map[string]any
	for _, group := range g.Groups() {
		items, _ := group["boards"].([]any)
		for _, item := range items {
			board, ok := item.(map[string]any)
			if !ok {
				continue
			}
			boards = append(boards, board)
		}
	}
	return boards
}

// BoardNames returns the titles of every board of the channel.
func (g *GroupedBoards) BoardNames() []string {
	var names []string
	for _, board := range g.Boards() {
		title, _ := board["title"].(string)
		names = append(names, title)
	}
	return names
}
