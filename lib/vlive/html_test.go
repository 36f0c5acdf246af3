package vlive

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderPostHTML(t *testing.T) {
	out := renderPostHTML(postHTMLData{
		Link:      "https://www.vlive.tv/post/1-111",
		Author:    "someone",
		CreatedAt: time.UnixMilli(1609459200000),
		Title:     "Hello",
		Body:      "<p>body</p>",
	})
	require.Contains(t, out, `href="https://www.vlive.tv/post/1-111"`)
	require.Contains(t, out, `<span class="author" style=`)
	require.Contains(t, out, "someone")
	require.Contains(t, out, `<h2 class="title">Hello</h2>`)
	require.Contains(t, out, "<p>body</p>")
	require.NotContains(t, out, "###")
}

func TestPostFormattedBody(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	post := client.NewPost(context.Background(), "1-111", WithPayload(map[string]any{
		"postId": "1-111",
		"title":  "Hello",
		"body":   "<p>rich</p>",
		"url":    "https://www.vlive.tv/post/1-111",
		"author": map[string]any{"nickname": "someone"},
	}))
	out := post.FormattedBody()
	require.Contains(t, out, "<p>rich</p>")
	require.Contains(t, out, "Hello")
}

func TestVideoPostFormattedBody(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	video := client.NewOfficialVideoPost(context.Background(), "222", WithPayload(map[string]any{
		"postId":    "1-111",
		"title":     "Hello",
		"plainBody": "caption",
		"url":       "https://www.vlive.tv/post/1-111",
		"officialVideo": map[string]any{
			"videoSeq": float64(222),
			"title":    "Hello <Video>",
		},
	}))
	out := video.FormattedBody()
	require.Contains(t, out, `/video/222"`)
	require.Contains(t, out, "Hello &lt;Video&gt;")
	require.Contains(t, out, "caption")
	require.NotContains(t, out, "###VIDEO###")
}
