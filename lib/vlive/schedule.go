package vlive

import (
	"context"
	"time"
)

// Schedule is a cached model of one channel schedule entry. Schedules are
// membership content, so a session is required.
type Schedule struct {
	cached
	client *Client
}

func (c *Client) NewSchedule(ctx context.Context, scheduleID string, session *Session, opts ...EntityOption) *Schedule {
	o := applyOptions(opts)
	s := &Schedule{
		cached: cached{
			kind:    KindSchedule,
			id:      scheduleID,
			session: session,
		},
		client: c,
	}
	s.fetch = func(ctx context.Context) (map[string]any, error) {
		return c.ScheduleData(ctx, scheduleID, s.session, true)
	}
	if o.payload != nil {
		s.adopt(o.payload)
	} else {
		s.refresh(ctx)
	}
	return s
}

func (s *Schedule) Kind() Kind { return s.kind }
func (s *Schedule) ID() string { return s.id }

func (s *Schedule) Refresh(ctx context.Context) {
	s.refresh(ctx)
}

func (s *Schedule) Payload() map[string]any {
	return s.payload()
}

func (s *Schedule) Title() string          { return s.str("title") }
func (s *Schedule) Description() string    { return s.str("description") }
func (s *Schedule) Type() string           { return s.str("type") }
func (s *Schedule) Location() string       { return s.str("location") }
func (s *Schedule) TimezoneID() string     { return s.str("timezoneId") }
func (s *Schedule) ChannelCode() string    { return s.str("channel", "channelCode") }
func (s *Schedule) ChannelName() string    { return s.str("channel", "channelName") }
func (s *Schedule) AuthorNickname() string { return s.str("author", "nickname") }
func (s *Schedule) PostID() string         { return s.str("postId") }
func (s *Schedule) CommentCount() int64    { return s.integer("commentCount") }
func (s *Schedule) EmotionCount() int64    { return s.integer("emotionCount") }

func (s *Schedule) StartAt() time.Time {
	return time.UnixMilli(s.integer("startAt"))
}
