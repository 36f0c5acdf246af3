package vlive

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func stubListing() []UpcomingVideo {
	return []UpcomingVideo{
		{Seq: "1", Name: "replay", Type: "VOD"},
		{Seq: "2", Name: "premiere", Type: "UPCOMING_VOD"},
		{Seq: "3", Name: "soon", Type: "UPCOMING_LIVE"},
		{Seq: "4", Name: "on air", Type: "LIVE"},
	}
}

func TestUpcomingCachesWithinPeriod(t *testing.T) {
	ctx := context.Background()
	calls := 0
	u := newUpcoming(func(ctx context.Context) ([]UpcomingVideo, error) {
		calls++
		return stubListing(), nil
	}, UpcomingOptions{RefreshRate: 300})

	u.Refresh(ctx, true)
	require.Equal(t, 1, calls)

	// within the period reads serve the cache
	require.Len(t, u.Load(ctx), 4)
	u.Refresh(ctx, false)
	require.Equal(t, 1, calls)

	// force bypasses the period
	u.Refresh(ctx, true)
	require.Equal(t, 2, calls)
}

func TestUpcomingEmptyListingRestartsPeriod(t *testing.T) {
	ctx := context.Background()
	calls := 0
	u := newUpcoming(func(ctx context.Context) ([]UpcomingVideo, error) {
		calls++
		return upcomingFromPage([]byte(`<html><body><ul class="upcoming_list"></ul></body></html>`))
	}, UpcomingOptions{RefreshRate: 300})

	// an empty day is a successful fetch; the period must restart
	u.Refresh(ctx, true)
	u.Refresh(ctx, false)
	u.Refresh(ctx, false)
	require.Equal(t, 1, calls)
	require.Empty(t, u.Items())
}

func TestUpcomingFailedRefreshKeepsItems(t *testing.T) {
	ctx := context.Background()
	fail := false
	u := newUpcoming(func(ctx context.Context) ([]UpcomingVideo, error) {
		if fail {
			return nil, errors.New("listing unavailable")
		}
		return stubListing(), nil
	}, UpcomingOptions{})

	u.Refresh(ctx, true)
	require.Len(t, u.Items(), 4)

	fail = true
	u.Refresh(ctx, true)
	require.Len(t, u.Items(), 4)
}

func TestUpcomingFilter(t *testing.T) {
	ctx := context.Background()
	u := newUpcoming(func(ctx context.Context) ([]UpcomingVideo, error) {
		return stubListing(), nil
	}, UpcomingOptions{
		Filter: &UpcomingFilter{ShowLive: true},
	})
	u.Refresh(ctx, true)

	// configured default filter
	items := u.Items()
	require.Len(t, items, 1)
	require.Equal(t, "on air", items[0].Name)

	// per-read override
	items = u.Items(UpcomingFilter{ShowVOD: true, ShowUpcomingVOD: true})
	require.Len(t, items, 2)
	require.Equal(t, "replay", items[0].Name)

	require.Len(t, u.Items(ShowAll()), 4)
}

const upcomingPageFixture = `<html><body>
<ul class="upcoming_list">
<li class="video_list">
	<span class="time">10:00</span>
	<a class="_title" data-ga-seq="101" data-ga-cseq="3" data-ga-cname="Channel A"
		data-ga-ctype="BASIC" data-ga-name="First Live" data-ga-type="LIVE"
		data-ga-product="NONE">First Live</a>
</li>
<li class="video_list">
	<span class="time">12:00</span>
	<a class="_title" data-ga-seq="102" data-ga-cseq="4" data-ga-cname="Channel B"
		data-ga-ctype="PREMIUM" data-ga-name="Member Show" data-ga-type="UPCOMING"
		data-ga-product="PAID">Member Show</a>
</li>
<li class="replay video_list">
	<span class="time">14:00</span>
	<a class="_title" data-ga-seq="103" data-ga-cseq="3" data-ga-cname="Channel A"
		data-ga-ctype="BASIC" data-ga-name="Replay Soon" data-ga-type="UPCOMING"
		data-ga-product="NONE">Replay Soon</a>
</li>
</ul>
</body></html>`

func TestUpcomingFromPage(t *testing.T) {
	items, err := upcomingFromPage([]byte(upcomingPageFixture))
	require.NoError(t, err)

	want := []UpcomingVideo{
		{
			Seq: "101", Time: "10:00",
			ChannelSeq: "3", ChannelName: "Channel A", ChannelType: "BASIC",
			Name: "First Live", Type: "LIVE", Product: "NONE",
		},
		{
			Seq: "102", Time: "12:00",
			ChannelSeq: "4", ChannelName: "Channel B", ChannelType: "PREMIUM",
			Name: "Member Show", Type: "UPCOMING_LIVE", Product: "PAID",
		},
		{
			Seq: "103", Time: "14:00",
			ChannelSeq: "3", ChannelName: "Channel A", ChannelType: "BASIC",
			Name: "Replay Soon", Type: "UPCOMING_VOD", Product: "NONE",
		},
	}
	diff := cmp.Diff(want, items)
	require.Empty(t, diff)
}

func TestUpcomingFromPageWithoutListing(t *testing.T) {
	// maintenance pages serve markup without the listing element
	_, err := upcomingFromPage([]byte(`<html><body>service maintenance</body></html>`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestUpcomingFromPageEmptyListing(t *testing.T) {
	items, err := upcomingFromPage([]byte(`<html><body><ul class="upcoming_list"></ul></body></html>`))
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestUpcomingListWithoutListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upcoming", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`<html><body>service maintenance</body></html>`))
		require.NoError(t, err)
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	_, err := client.UpcomingList(ctx, "", false)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	items, err := client.UpcomingList(ctx, "", true)
	require.NoError(t, err)
	require.Nil(t, items)
}
