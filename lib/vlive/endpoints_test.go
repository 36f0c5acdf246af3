package vlive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func customConfig() ClientConfig {
	return ClientConfig{
		AppID:          "app",
		BaseURL:        "https://front.example",
		APIBaseURL:     "https://api.example",
		MediaBaseURL:   "https://media.example",
		GCC:            "US",
		Locale:         "en_US",
		AcceptLanguage: "en",
		UserAgent:      "test-agent",
	}
}

func TestEndpointsFollowConfig(t *testing.T) {
	cfg := customConfig()

	ep := cfg.endpointPost("1-111")
	require.Equal(t, "https://front.example/globalv-web/vam-web/post/v1.0/post-1-111", ep.url)
	require.Equal(t, "app", ep.params["appId"])
	require.Equal(t, "US", ep.params["gcc"])
	require.Equal(t, "en_US", ep.params["locale"])
	require.Equal(t, "https://front.example/post/1-111", ep.headers["Referer"])
	require.Equal(t, "test-agent", ep.headers["User-Agent"])
	require.ElementsMatch(t, []int{200, 403}, ep.accept)

	ep = cfg.endpointDecodeChannelCode("ABC")
	require.Equal(t, "https://api.example/vproxy/channelplus/decodeChannelCode", ep.url)
	require.Equal(t, "ABC", ep.params["channelCode"])

	ep = cfg.endpointVodPlayInfo("vod-1", "inkey-1")
	require.Equal(t, "https://media.example/rmcnmv/rmcnmv/vod/play/v2.0/vod-1", ep.url)
	require.Equal(t, "inkey-1", ep.params["key"])
	require.Equal(t, "en_US", ep.params["cpl"])
	require.Equal(t, "US", ep.params["cc"])
}

func TestEndpointCommentFamily(t *testing.T) {
	cfg := customConfig()

	ep := cfg.endpointComment("post", "1-111", "comments", "")
	require.Equal(t, "https://front.example/globalv-web/vam-web/comment/v1.0/post-1-111/comments", ep.url)
	require.NotContains(t, ep.params, "after")

	ep = cfg.endpointComment("post", "1-111", "starComments", "CUR")
	require.Equal(t, "https://front.example/globalv-web/vam-web/comment/v1.0/post-1-111/starComments", ep.url)
	require.Equal(t, "CUR", ep.params["after"])

	ep = cfg.endpointComment("comment", "c-9", "", "")
	require.Equal(t, "https://front.example/globalv-web/vam-web/comment/v1.0/comment-c-9", ep.url)
}

func TestEndpointBoardPostsSort(t *testing.T) {
	cfg := customConfig()

	require.Equal(t, "LATEST", cfg.endpointBoardPosts("42", "ABC", "", true).params["sortType"])
	require.Equal(t, "OLDEST", cfg.endpointBoardPosts("42", "ABC", "", false).params["sortType"])
}

func TestDefaultsFillMissingFields(t *testing.T) {
	cfg := ClientConfig{GCC: "US"}.Defaults()
	require.Equal(t, "US", cfg.GCC)
	require.NotEmpty(t, cfg.AppID)
	require.NotEmpty(t, cfg.BaseURL)
	require.NotEmpty(t, cfg.UserAgent)
}
