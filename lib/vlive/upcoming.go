package vlive

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// UpcomingList scrapes the upcoming listing. date filters by yyyyMMdd;
// "" is today.
func (c *Client) UpcomingList(ctx context.Context, date string, silent bool) ([]UpcomingVideo, error) {
	ctx, span := tracer.Start(ctx, "client:UpcomingList")
	defer span.End()

	res, err := c.get(ctx, c.http, c.cfg.endpointUpcoming(date))
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

	items, err := upcomingFromPage(res.body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if silent {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// UpcomingFilter selects which item categories a read returns.
type UpcomingFilter struct {
	ShowVOD          bool
	ShowUpcomingVOD  bool
	ShowUpcomingLive bool
	ShowLive         bool
}

// ShowAll selects every category.
func ShowAll() UpcomingFilter {
	return UpcomingFilter{
		ShowVOD:          true,
		ShowUpcomingVOD:  true,
		ShowUpcomingLive: true,
		ShowLive:         true,
	}
}

func (f UpcomingFilter) match(item UpcomingVideo) bool {
	switch item.Type {
	case "VOD":
		return f.ShowVOD
	case "UPCOMING_VOD":
		return f.ShowUpcomingVOD
	case "UPCOMING_LIVE":
		return f.ShowUpcomingLive
	case "LIVE":
		return f.ShowLive
	default:
		return false
	}
}

// Upcoming caches the whole upcoming listing and refreshes it wholesale
// on a time-to-live, independent of any per-item caching.
type Upcoming struct {
	fetch  func(ctx context.Context) ([]UpcomingVideo, error)
	filter UpcomingFilter

	// refreshRate is whole seconds; lastRefresh is kept truncated to
	// whole seconds while "now" is taken at full resolution, so a
	// refresh can fire up to ~1s before the nominal period. Callers of
	// the original rely on the early margin; do not round it away.
	refreshRate int64
	lastRefresh int64
	items       []UpcomingVideo
}

type UpcomingOptions struct {
	// RefreshRate is the cache period in seconds, default 300.
	RefreshRate int64
	// Filter is the default read filter, default everything.
	Filter *UpcomingFilter
}

// NewUpcoming builds the listing cache and performs the initial load.
func (c *Client) NewUpcoming(ctx context.Context, opts UpcomingOptions) *Upcoming {
	u := newUpcoming(
		func(ctx context.Context) ([]UpcomingVideo, error) {
			// failures must arrive as errors here, not as a silent nil,
			// so Refresh can tell them apart from an empty listing
			return c.UpcomingList(ctx, "", false)
		},
		opts,
	)
	u.Refresh(ctx, true)
	return u
}

func newUpcoming(fetch func(ctx context.Context) ([]UpcomingVideo, error), opts UpcomingOptions) *Upcoming {
	u := &Upcoming{
		fetch:       fetch,
		filter:      ShowAll(),
		refreshRate: opts.RefreshRate,
	}
	if u.refreshRate == 0 {
		u.refreshRate = 300
	}
	if opts.Filter != nil {
		u.filter = *opts.Filter
	}
	return u
}

// Refresh re-fetches the whole listing when the period elapsed or force is
// set; otherwise it is a no-op. The timestamp only advances on a
// successful fetch, so a failed refresh retries on the next call instead
// of waiting out a full period.
func (u *Upcoming) Refresh(ctx context.Context, force bool) {
	now := float64(time.Now().UnixNano()) / float64(time.Second)
	if !force && now-float64(u.lastRefresh) < float64(u.refreshRate) {
		return
	}

	items, err := u.fetch(ctx)
	if err != nil {
		slog.Warn("upcoming refresh failed, keeping previous items", "err", err)
		return
	}
	// an empty listing is still a successful fetch and restarts the period
	u.items = items
	u.lastRefresh = time.Now().Unix()
}

// Items reads the cached listing through a filter without refreshing.
// Passing no filter uses the one the cache was configured with.
func (u *Upcoming) Items(filter ...UpcomingFilter) []UpcomingVideo {
	f := u.filter
	if len(filter) > 0 {
		f = filter[0]
	}
	var out []UpcomingVideo
	for _, item := range u.items {
		if f.match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Load is the public read path: maybe-refresh, then read.
func (u *Upcoming) Load(ctx context.Context, filter ...UpcomingFilter) []UpcomingVideo {
	u.Refresh(ctx, false)
	return u.Items(filter...)
}
