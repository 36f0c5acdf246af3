package vlive

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// videoTarget resolves either id space to a video seq. Dashed ids are post
// ids and cost one extra round trip to translate; bare numbers are already
// video seqs.
func (c *Client) videoTarget(ctx context.Context, number string, session *Session) string {
	if !strings.Contains(number, "-") {
		return number
	}
	seq, err := c.PostIDToVideoSeq(ctx, number, session, true)
	if err != nil || seq == "" {
		slog.Warn(
			"failed to translate post id to video seq",
			"post_id", number,
			"err", err,
		)
		return number
	}
	return seq
}

// OfficialVideoPost is a cached model of the post wrapping an official
// video. It accepts either a dashed post id or a bare video seq.
type OfficialVideoPost struct {
	cached
	client *Client
}

func (c *Client) NewOfficialVideoPost(ctx context.Context, number string, opts ...EntityOption) *OfficialVideoPost {
	o := applyOptions(opts)
	v := &OfficialVideoPost{
		cached: cached{
			kind:    KindOfficialVideoPost,
			session: o.session,
		},
		client: c,
	}
	v.id = c.videoTarget(ctx, number, o.session)
	v.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.OfficialVideoPost(ctx, v.id, v.session, true)
	}
	if o.payload != nil {
		v.adopt(o.payload)
	} else {
		v.refresh(ctx)
	}
	return v
}

func (v *OfficialVideoPost) Kind() Kind { return v.kind }
func (v *OfficialVideoPost) ID() string { return v.id }

func (v *OfficialVideoPost) Refresh(ctx context.Context) {
	v.refresh(ctx)
}

func (v *OfficialVideoPost) Payload() map[string]any {
	return v.payload()
}

func (v *OfficialVideoPost) PostID() string      { return v.str("postId") }
func (v *OfficialVideoPost) Title() string       { return v.str("title") }
func (v *OfficialVideoPost) ChannelCode() string { return v.str("author", "channelCode") }
func (v *OfficialVideoPost) ChannelName() string { return v.str("channel", "channelName") }
func (v *OfficialVideoPost) VideoSeq() int64     { return v.integer("officialVideo", "videoSeq") }
func (v *OfficialVideoPost) VideoTitle() string  { return v.str("officialVideo", "title") }
func (v *OfficialVideoPost) VideoType() string   { return v.str("officialVideo", "type") }
func (v *OfficialVideoPost) PlayCount() int64    { return v.integer("officialVideo", "playCount") }
func (v *OfficialVideoPost) LikeCount() int64    { return v.integer("officialVideo", "likeCount") }

// IsVOD reports whether the wrapped video has a VOD id, meaning playback
// goes through the VOD api instead of the live one.
func (v *OfficialVideoPost) IsVOD() bool {
	return v.has("officialVideo", "vodId")
}

func (v *OfficialVideoPost) VodID() string {
	return v.str("officialVideo", "vodId")
}

func (v *OfficialVideoPost) CreatedAt() time.Time {
	return time.UnixMilli(v.integer("createdAt"))
}

// FormattedBody renders the video post into the platform's standalone
// HTML snippet, with the player box where the web player would sit.
func (v *OfficialVideoPost) FormattedBody() string {
	embed := fmt.Sprintf(
		`<a href="%s/video/%d">%s</a>`,
		v.client.cfg.BaseURL, v.VideoSeq(), html.EscapeString(v.VideoTitle()),
	)
	return renderPostHTML(postHTMLData{
		Link:      v.str("url"),
		Author:    v.str("author", "nickname"),
		CreatedAt: v.CreatedAt(),
		Title:     v.Title(),
		Body:      renderVideoBox(embed) + v.str("plainBody"),
	})
}

// OfficialVideoLive is an OfficialVideoPost that is known to wrap a
// currently-live video.
type OfficialVideoLive struct {
	OfficialVideoPost
}

// NewOfficialVideoLive builds a live-only model. Constructing it on a VOD
// is a caller-contract violation and fails with *TypeMismatchError; this
// is the one construction error that no flag suppresses.
func (c *Client) NewOfficialVideoLive(ctx context.Context, number string, opts ...EntityOption) (*OfficialVideoLive, error) {
	v := &OfficialVideoLive{
		OfficialVideoPost: *c.NewOfficialVideoPost(ctx, number, opts...),
	}
	v.kind = KindOfficialVideoLive
	err := v.checkVideoType("LIVE")
	if err != nil {
		return nil, err
	}
	return v, nil
}

// LivePlayInfo fetches the live playback descriptor.
func (v *OfficialVideoLive) LivePlayInfo(ctx context.Context, silent bool) (map[string]any, error) {
	return v.client.LivePlayInfo(ctx, v.id, "", v.session, silent)
}

// LiveStatus fetches the current live status payload.
func (v *OfficialVideoLive) LiveStatus(ctx context.Context, silent bool) (map[string]any, error) {
	return v.client.LiveStatus(ctx, v.id, silent)
}

func (v *OfficialVideoLive) OnAirStartAt() time.Time {
	return time.UnixMilli(v.integer("officialVideo", "onAirStartAt"))
}

// OfficialVideoVOD is an OfficialVideoPost that is known to wrap a VOD.
type OfficialVideoVOD struct {
	OfficialVideoPost
}

// NewOfficialVideoVOD builds a VOD-only model; a live video fails with
// *TypeMismatchError regardless of any silent flag.
func (c *Client) NewOfficialVideoVOD(ctx context.Context, number string, opts ...EntityOption) (*OfficialVideoVOD, error) {
	v := &OfficialVideoVOD{
		OfficialVideoPost: *c.NewOfficialVideoPost(ctx, number, opts...),
	}
	v.kind = KindOfficialVideoVOD
	err := v.checkVideoType("VOD")
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Inkey fetches the VOD playback key.
func (v *OfficialVideoVOD) Inkey(ctx context.Context, silent bool) (string, error) {
	return v.client.VodInkey(ctx, v.id, v.session, silent)
}

// PlayInfo fetches the VOD playback descriptor.
func (v *OfficialVideoVOD) PlayInfo(ctx context.Context, silent bool) (map[string]any, error) {
	return v.client.VodPlayInfo(ctx, v.id, v.VodID(), v.session, silent)
}

// checkVideoType validates the fetched subtype. An empty cache cannot be
// validated; the lenient-refresh policy already logged the failed fetch.
func (v *OfficialVideoPost) checkVideoType(want string) error {
	if len(v.data) == 0 {
		return nil
	}
	got := v.VideoType()
	if got != want {
		return &TypeMismatchError{
			VideoSeq: v.id,
			Want:     want,
			Got:      got,
		}
	}
	return nil
}

// PostIDToVideoSeq resolves the video seq paired with a dashed post id.
func (c *Client) PostIDToVideoSeq(ctx context.Context, postID string, session *Session, silent bool) (string, error) {
	post, err := c.PostInfo(ctx, postID, session, silent)
	if err != nil || post == nil {
		return "", err
	}
	video, ok := post["officialVideo"].(map[string]any)
	if !ok {
		if silent {
			return "", nil
		}
		return "", &ParseError{
			Message: "post " + postID + " is not an official video post",
		}
	}
	switch seq := video["videoSeq"].(type) {
	case string:
		return seq, nil
	case float64:
		return strconv.FormatInt(int64(seq), 10), nil
	default:
		if silent {
			return "", nil
		}
		return "", &ParseError{Message: "official video carries no video seq"}
	}
}

// VideoSeqToPostID resolves the dashed post id paired with a video seq.
func (c *Client) VideoSeqToPostID(ctx context.Context, videoSeq string, session *Session, silent bool) (string, error) {
	post, err := c.OfficialVideoPost(ctx, videoSeq, session, silent)
	if err != nil || post == nil {
		return "", err
	}
	postID, _ := post["postId"].(string)
	return postID, nil
}

// PostTypeDetector reports the content type of a post: "POST" for normal
// posts, "VIDEO" for official video posts.
func (c *Client) PostTypeDetector(ctx context.Context, postID string, silent bool) (string, error) {
	post, err := c.PostInfo(ctx, postID, nil, silent)
	if err != nil || post == nil {
		return "", err
	}
	contentType, _ := post["contentType"].(string)
	return contentType, nil
}
