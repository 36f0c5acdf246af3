package vlive

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

// ChannelInfo scrapes a channel's metadata out of the JSON state embedded
// in its webpage. The channel api proper was retired; the webpage is the
// only place this data is still served.
func (c *Client) ChannelInfo(ctx context.Context, channelCode string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:ChannelInfo")
	defer span.End()

	res, err := c.get(ctx, c.httpFor(session), c.cfg.endpointChannelWebpage(channelCode))
	if err != nil || !res.ok {
		span.SetStatus(codes.Error, "request failed")
		if silent {
			return nil, nil
		}
		if err != nil {
			return nil, &NetworkError{URL: c.cfg.BaseURL, Err: err}
		}
		return nil, &NetworkError{URL: c.cfg.BaseURL, Status: res.status}
	}

	info, err := channelInfoFromPage(res.body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if silent {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// Channel is a cached model of one channel.
type Channel struct {
	cached
	client *Client
}

func (c *Client) NewChannel(ctx context.Context, channelCode string, opts ...EntityOption) *Channel {
	o := applyOptions(opts)
	ch := &Channel{
		cached: cached{
			kind:    KindChannel,
			id:      channelCode,
			session: o.session,
		},
		client: c,
	}
	ch.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.ChannelInfo(ctx, channelCode, ch.session, true)
	}
	if o.payload != nil {
		ch.adopt(o.payload)
	} else {
		ch.refresh(ctx)
	}
	return ch
}

func (ch *Channel) Kind() Kind { return ch.kind }
func (ch *Channel) ID() string { return ch.id }

func (ch *Channel) Refresh(ctx context.Context) {
	ch.refresh(ctx)
}

func (ch *Channel) Payload() map[string]any {
	return ch.payload()
}

func (ch *Channel) Name() string         { return ch.str("channelName") }
func (ch *Channel) Code() string         { return ch.str("channelCode") }
func (ch *Channel) ProfileImage() string { return ch.str("channelProfileImage") }
func (ch *Channel) CoverImage() string   { return ch.str("channelCoverImage") }
func (ch *Channel) Description() string  { return ch.str("comment") }
func (ch *Channel) MemberCount() int64   { return ch.integer("memberCount") }
func (ch *Channel) VideoCount() int64    { return ch.integer("videoCountOfStar") }

// Seq resolves the channel's numeric seq through the decode endpoint; the
// webpage state does not carry it.
func (ch *Channel) Seq(ctx context.Context, silent bool) (int64, error) {
	return ch.client.DecodeChannelCode(ctx, ch.id, silent)
}

// GroupedBoards builds the board-group model of this channel.
func (ch *Channel) GroupedBoards(ctx context.Context) *GroupedBoards {
	return ch.client.NewGroupedBoards(ctx, ch.id, WithSession(ch.session))
}
