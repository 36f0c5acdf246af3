package vlive

import (
	"context"
	"time"
)

type entityOptions struct {
	session *Session
	payload map[string]any
}

// EntityOption configures entity construction.
type EntityOption func(*entityOptions)

// WithSession makes the entity fetch through a signed-in session.
func WithSession(s *Session) EntityOption {
	return func(o *entityOptions) { o.session = s }
}

// WithPayload adopts an already-fetched payload instead of hitting the
// network at construction time.
func WithPayload(p map[string]any) EntityOption {
	return func(o *entityOptions) { o.payload = p }
}

func applyOptions(opts []EntityOption) entityOptions {
	var o entityOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Post is a cached model of one normal (non-video) post.
type Post struct {
	cached
	client *Client
}

// NewPost builds a Post and populates its cache with one fetch. A failed
// first fetch does not fail construction; the cache simply stays empty
// until a later Refresh succeeds.
func (c *Client) NewPost(ctx context.Context, postID string, opts ...EntityOption) *Post {
	o := applyOptions(opts)
	p := &Post{
		cached: cached{
			kind:    KindPost,
			id:      postID,
			session: o.session,
		},
		client: c,
	}
	p.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.PostInfo(ctx, postID, p.session, true)
	}
	if o.payload != nil {
		p.adopt(o.payload)
	} else {
		p.refresh(ctx)
	}
	return p
}

func (p *Post) Kind() Kind { return p.kind }
func (p *Post) ID() string { return p.id }

// Refresh replaces the cached payload from the network. Failures are
// logged, not returned; the previous payload stays in place.
func (p *Post) Refresh(ctx context.Context) {
	p.refresh(ctx)
}

// Payload returns a deep copy of the cached post payload.
func (p *Post) Payload() map[string]any {
	return p.payload()
}

func (p *Post) Title() string       { return p.str("title") }
func (p *Post) PlainBody() string   { return p.str("plainBody") }
func (p *Post) Body() string        { return p.str("body") }
func (p *Post) URL() string         { return p.str("url") }
func (p *Post) ContentType() string { return p.str("contentType") }
func (p *Post) ChannelCode() string { return p.str("channel", "channelCode") }
func (p *Post) ChannelName() string { return p.str("channel", "channelName") }
func (p *Post) AuthorNickname() string {
	return p.str("author", "nickname")
}
func (p *Post) AuthorID() string    { return p.str("authorId") }
func (p *Post) CommentCount() int64 { return p.integer("commentCount") }
func (p *Post) EmotionCount() int64 { return p.integer("emotionCount") }

// CreatedAt decodes the platform's millisecond epoch timestamp.
func (p *Post) CreatedAt() time.Time {
	return time.UnixMilli(p.integer("createdAt"))
}

// FormattedBody renders the post into the platform's standalone HTML
// snippet.
func (p *Post) FormattedBody() string {
	body := p.str("body")
	if body == "" {
		body = p.str("plainBody")
	}
	return renderPostHTML(postHTMLData{
		Link:      p.URL(),
		Author:    p.AuthorNickname(),
		CreatedAt: p.CreatedAt(),
		Title:     p.Title(),
		Body:      body,
	})
}

// Comments pages through the post's comments.
func (p *Post) Comments(ctx context.Context, after string, silent bool) (*CommentPage, error) {
	return p.client.PostComments(ctx, p.id, p.session, after, silent)
}

// CommentsIter lazily walks every comment of the post.
func (p *Post) CommentsIter(ctx context.Context) *CommentIter {
	return p.client.PostCommentsIter(ctx, p.id, p.session)
}

// StarCommentsIter lazily walks the post's star comments.
func (p *Post) StarCommentsIter(ctx context.Context) *CommentIter {
	return p.client.PostStarCommentsIter(ctx, p.id, p.session)
}
