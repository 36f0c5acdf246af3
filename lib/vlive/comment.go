package vlive

import (
	"context"
	"time"
	"vlivego/lib/envelope"

	"go.opentelemetry.io/otel/codes"
)

// Comment is a cached model of one comment.
type Comment struct {
	cached
	client *Client
}

// NewComment builds a Comment. Listings already carry full comment
// payloads, so they construct with WithPayload and skip the initial fetch.
func (c *Client) NewComment(ctx context.Context, commentID string, opts ...EntityOption) *Comment {
	o := applyOptions(opts)
	cm := &Comment{
		cached: cached{
			kind:    KindComment,
			id:      commentID,
			session: o.session,
		},
		client: c,
	}
	cm.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.CommentData(ctx, commentID, cm.session, true)
	}
	if o.payload != nil {
		cm.adopt(o.payload)
	} else {
		cm.refresh(ctx)
	}
	return cm
}

func (cm *Comment) Kind() Kind { return cm.kind }
func (cm *Comment) ID() string { return cm.id }

func (cm *Comment) Refresh(ctx context.Context) {
	cm.refresh(ctx)
}

func (cm *Comment) Payload() map[string]any {
	return cm.payload()
}

func (cm *Comment) Body() string           { return cm.str("body") }
func (cm *Comment) AuthorNickname() string { return cm.str("author", "nickname") }
func (cm *Comment) WrittenIn() string      { return cm.str("writtenIn") }
func (cm *Comment) EmotionCount() int64    { return cm.integer("emotionCount") }
func (cm *Comment) CommentCount() int64    { return cm.integer("commentCount") }
func (cm *Comment) IsRestricted() bool     { return cm.boolean("isRestricted") }
func (cm *Comment) ParentID() string       { return cm.str("parent", "data", "commentId") }
func (cm *Comment) RootID() string         { return cm.str("root", "data", "commentId") }

func (cm *Comment) CreatedAt() time.Time {
	return time.UnixMilli(cm.integer("createdAt"))
}

// NestedIter lazily walks the comment's replies.
func (cm *Comment) NestedIter(ctx context.Context) *CommentIter {
	return cm.client.NestedCommentsIter(ctx, cm.id, cm.session)
}

// CommentPage is one page of a comment listing.
type CommentPage = envelope.Page[*Comment]

// CommentIter is a lazy walk over a comment listing.
type CommentIter = envelope.Iter[*Comment]

// CommentData fetches one comment's payload.
func (c *Client) CommentData(ctx context.Context, commentID string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:CommentData")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointComment("comment", commentID, "", ""), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// commentPage turns a normalized listing payload into a CommentPage,
// wrapping each item payload in a Comment without extra fetches.
func (c *Client) commentPage(ctx context.Context, data map[string]any, session *Session) *CommentPage {
	if data == nil {
		return nil
	}
	page := &CommentPage{
		After: envelope.NextCursor(data),
		Raw:   data,
	}
	items, _ := data["data"].([]any)
	for _, item := range items {
		payload, ok := item.(map[string]any)
		if !ok {
			continue
		}
		commentID, _ := payload["commentId"].(string)
		page.Items = append(page.Items, c.NewComment(
			ctx, commentID,
			WithSession(session), WithPayload(payload),
		))
	}
	return page
}

// PostComments fetches one page of a post's comments. after is "" for the
// first page.
func (c *Client) PostComments(ctx context.Context, postID string, session *Session, after string, silent bool) (*CommentPage, error) {
	ctx, span := tracer.Start(ctx, "client:PostComments")
	defer span.End()

	ep := c.cfg.endpointComment("post", postID, "comments", after, "latestComments")
	data, err := c.fetchNormalized(ctx, ep, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return c.commentPage(ctx, data, session), nil
}

// PostCommentsIter lazily walks every comment of a post, one network page
// at a time.
func (c *Client) PostCommentsIter(ctx context.Context, postID string, session *Session) *CommentIter {
	return envelope.Iterate(func(after string) (*CommentPage, error) {
		return c.PostComments(ctx, postID, session, after, false)
	})
}

// PostStarComments fetches one page of a post's star comments.
func (c *Client) PostStarComments(ctx context.Context, postID string, session *Session, after string, silent bool) (*CommentPage, error) {
	ctx, span := tracer.Start(ctx, "client:PostStarComments")
	defer span.End()

	ep := c.cfg.endpointComment("post", postID, "starComments", after)
	data, err := c.fetchNormalized(ctx, ep, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return c.commentPage(ctx, data, session), nil
}

func (c *Client) PostStarCommentsIter(ctx context.Context, postID string, session *Session) *CommentIter {
	return envelope.Iterate(func(after string) (*CommentPage, error) {
		return c.PostStarComments(ctx, postID, session, after, false)
	})
}

// NestedComments fetches one page of a comment's replies.
func (c *Client) NestedComments(ctx context.Context, commentID string, session *Session, after string, silent bool) (*CommentPage, error) {
	ctx, span := tracer.Start(ctx, "client:NestedComments")
	defer span.End()

	ep := c.cfg.endpointComment("comment", commentID, "comments", after)
	data, err := c.fetchNormalized(ctx, ep, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return c.commentPage(ctx, data, session), nil
}

func (c *Client) NestedCommentsIter(ctx context.Context, commentID string, session *Session) *CommentIter {
	return envelope.Iterate(func(after string) (*CommentPage, error) {
		return c.NestedComments(ctx, commentID, session, after, false)
	})
}
