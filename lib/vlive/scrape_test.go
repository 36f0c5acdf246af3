package vlive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const channelPageFixture = `<html><head>
<script type="text/javascript">
	window.__PRELOADED_STATE__={"channel":{"channel":{"channelCode":"ABC",` +
	`"channelName":"A Channel","channelProfileImage":"https://img.example/p.png",` +
	`"channelCoverImage":"https://img.example/c.png","comment":"hello",` +
	`"memberCount":12345,"videoCount":678}}};function f(a){return a};
</script>
</head><body></body></html>`

func TestChannelInfoFromPage(t *testing.T) {
	channel, err := channelInfoFromPage([]byte(channelPageFixture))
	require.NoError(t, err)
	require.Equal(t, "ABC", channel["channelCode"])
	require.Equal(t, "A Channel", channel["channelName"])
	require.EqualValues(t, 12345, channel["memberCount"])
}

func TestChannelInfoFromPageWithoutState(t *testing.T) {
	_, err := channelInfoFromPage([]byte(`<html><body><script>var x = 1;</script></body></html>`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
