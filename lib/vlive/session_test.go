package vlive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"vlivego/lib/testutil"

	"github.com/stretchr/testify/require"
)

// signInHandler mimics the provider's login flow: wrong credentials bounce
// back to the login page, good ones set a session cookie and land on the
// home page.
func signInHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/email/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusOK)
			return
		}

		err := r.ParseForm()
		require.NoError(t, err)
		if r.PostForm.Get("pwd") != "right" {
			http.Redirect(w, r, "/auth/email/login?error=true", http.StatusSeeOther)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "NEO_SES", Value: "session-token", Path: "/"})
		http.Redirect(w, r, "/home", http.StatusSeeOther)
	})
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func TestSignIn(t *testing.T) {
	client := newTestClient(t, signInHandler(t))
	ctx := context.Background()

	session, err := client.SignIn(ctx, "user@example.com", "right", false)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", session.Email())
}

func TestSignInWrongCredentials(t *testing.T) {
	client := newTestClient(t, signInHandler(t))
	ctx := context.Background()

	_, err := client.SignIn(ctx, "user@example.com", "wrong", false)
	require.ErrorIs(t, err, ErrSignInFailed)

	// a credential rejection is never silenced
	_, err = client.SignIn(ctx, "user@example.com", "wrong", true)
	require.ErrorIs(t, err, ErrSignInFailed)
}

func TestSessionSerializeCarriesAllHosts(t *testing.T) {
	cleanup := testutil.Setup(t, "vlive")
	t.Cleanup(cleanup)

	server := httptest.NewServer(signInHandler(t))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		Config: ClientConfig{
			BaseURL:      server.URL,
			APIBaseURL:   "http://api.channel.test",
			MediaBaseURL: "http://media.playback.test",
		},
	})
	require.NoError(t, err)

	session, err := client.SignIn(context.Background(), "user@example.com", "right", false)
	require.NoError(t, err)

	// a cookie scoped to the channel api host, not the main site
	apiBase, err := url.Parse(client.Config().APIBaseURL)
	require.NoError(t, err)
	session.http.GetClient().Jar.SetCookies(apiBase, []*http.Cookie{
		{Name: "channel_session", Value: "api-token", Path: "/"},
	})

	blob, err := session.Serialize()
	require.NoError(t, err)
	restored, err := client.DeserializeSession(blob)
	require.NoError(t, err)

	jar := restored.http.GetClient().Jar
	mainBase, err := url.Parse(client.Config().BaseURL)
	require.NoError(t, err)
	require.Len(t, jar.Cookies(mainBase), 1)
	require.Equal(t, "NEO_SES", jar.Cookies(mainBase)[0].Name)
	require.Len(t, jar.Cookies(apiBase), 1)
	require.Equal(t, "channel_session", jar.Cookies(apiBase)[0].Name)
}

func TestSessionSerializeRoundTrip(t *testing.T) {
	client := newTestClient(t, signInHandler(t))
	ctx := context.Background()

	session, err := client.SignIn(ctx, "user@example.com", "right", false)
	require.NoError(t, err)

	blob, err := session.Serialize()
	require.NoError(t, err)

	restored, err := client.DeserializeSession(blob)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", restored.Email())

	// the session cookie must survive the round trip
	base := client.Config().BaseURL
	req, err := http.NewRequest(http.MethodGet, base+"/home", nil)
	require.NoError(t, err)
	cookies := restored.http.GetClient().Jar.Cookies(req.URL)
	require.Len(t, cookies, 1)
	require.Equal(t, "NEO_SES", cookies[0].Name)
	require.Equal(t, "session-token", cookies[0].Value)
}
