package vlive

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("vlive")

// PostInfo fetches the detailed payload of one post.
func (c *Client) PostInfo(ctx context.Context, postID string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:PostInfo")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointPost(postID), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// OfficialVideoPost fetches the post wrapping an official video by its
// video seq.
func (c *Client) OfficialVideoPost(ctx context.Context, videoSeq string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:OfficialVideoPost")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointOfficialVideoPost(videoSeq), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// VodInkey fetches the playback key of a VOD.
func (c *Client) VodInkey(ctx context.Context, videoSeq string, session *Session, silent bool) (string, error) {
	ctx, span := tracer.Start(ctx, "client:VodInkey")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointVodInkey(videoSeq), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	inkey, _ := data["inKey"].(string)
	return inkey, nil
}

// FVideoInkey fetches the playback key of a file video attachment.
func (c *Client) FVideoInkey(ctx context.Context, fvideoID string, session *Session, silent bool) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FVideoInkey")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointFVideoInkey(fvideoID), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	inkey, _ := data["inKey"].(string)
	return inkey, nil
}

// LivePlayInfo fetches the play info of a live video. vpdid2 may be "".
func (c *Client) LivePlayInfo(ctx context.Context, videoSeq, vpdid2 string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:LivePlayInfo")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointLivePlayInfo(videoSeq, vpdid2), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// LiveStatus fetches the status payload of a live video.
func (c *Client) LiveStatus(ctx context.Context, videoSeq string, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:LiveStatus")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointLiveStatus(videoSeq), nil, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// VodPlayInfo fetches the playback descriptor of a VOD. It costs two round
// trips: one for the inkey, one for the descriptor itself.
func (c *Client) VodPlayInfo(ctx context.Context, videoSeq, vodID string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:VodPlayInfo")
	defer span.End()

	inkey, err := c.VodInkey(ctx, videoSeq, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	data, err := c.fetchNormalized(ctx, c.cfg.endpointVodPlayInfo(vodID, inkey), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// FVideoPlayInfo fetches the playback descriptor of a file video
// attachment, resolving its inkey first.
func (c *Client) FVideoPlayInfo(ctx context.Context, fvideoID, vodID string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:FVideoPlayInfo")
	defer span.End()

	inkey, err := c.FVideoInkey(ctx, fvideoID, session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	data, err := c.fetchNormalized(ctx, c.cfg.endpointVodPlayInfo(vodID, inkey), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// ScheduleData fetches one schedule entry. Schedules are only visible to
// signed-in members, so session is required in practice.
func (c *Client) ScheduleData(ctx context.Context, scheduleID string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:ScheduleData")
	defer span.End()

	data, err := c.fetchNormalized(ctx, c.cfg.endpointScheduleData(scheduleID), session, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return data, err
}

// DecodeChannelCode resolves a channel code to its numeric channel seq.
func (c *Client) DecodeChannelCode(ctx context.Context, channelCode string, silent bool) (int64, error) {
	ctx, span := tracer.Start(ctx, "client:DecodeChannelCode")
	defer span.End()

	res, err := c.get(ctx, c.http, c.cfg.endpointDecodeChannelCode(channelCode))
	if err != nil || !res.ok {
		span.SetStatus(codes.Error, "request failed")
		if silent {
			return 0, nil
		}
		if err != nil {
			return 0, &NetworkError{URL: c.cfg.APIBaseURL, Err: err}
		}
		return 0, &NetworkError{URL: c.cfg.APIBaseURL, Status: res.status}
	}
	// the endpoint answers an empty body for unknown codes
	if len(res.body) == 0 {
		span.SetStatus(codes.Error, "empty response")
		if silent {
			return 0, nil
		}
		return 0, &ParseError{Message: "inappropriate channel code"}
	}

	raw, err := res.json()
	if err != nil {
		span.SetStatus(codes.Error, "failed to decode response")
		if silent {
			return 0, nil
		}
		return 0, &ParseError{Message: "failed to decode response body", Err: err}
	}
	result, _ := raw["result"].(map[string]any)
	seq, _ := result["channelSeq"].(float64)
	return int64(seq), nil
}

// GroupedBoardsData fetches the grouped board listing of a channel. The
// payload is returned as served; this endpoint does not use the usual
// envelope.
func (c *Client) GroupedBoardsData(ctx context.Context, channelCode string, session *Session, silent bool) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "client:GroupedBoardsData")
	defer span.End()

	res, err := c.get(ctx, c.httpFor(session), c.cfg.endpointGroupedBoards(channelCode))
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

	raw, err := res.json()
	if err != nil {
		span.SetStatus(codes.Error, "failed to decode response")
		if silent {
			return nil, nil
		}
		return nil, &ParseError{Message: "failed to decode response body", Err: err}
	}
	return raw, nil
}
