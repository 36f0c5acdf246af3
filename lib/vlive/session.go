package vlive

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// Session is a signed-in transport. It may be shared read-only across any
// number of entities; only Refresh mutates it, and callers must not race a
// Refresh against in-flight fetches using the old cookies (no lock is
// provided).
type Session struct {
	client *Client
	email  string
	pwd    string
	http   *resty.Client
}

// SignIn authenticates against the platform and returns a signed-in
// session.
//
// A credential rejection (detected by the provider redirecting back to its
// login page) returns ErrSignInFailed even under silent; only
// transport-level failures respect the flag. The asymmetry is inherited
// behavior, kept as observed.
func (c *Client) SignIn(ctx context.Context, email, pwd string, silent bool) (*Session, error) {
	ctx, span := tracer.Start(ctx, "client:SignIn")
	defer span.End()

	httpc, err := newHTTPClient(c.cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		client: c,
		email:  email,
		pwd:    pwd,
		http:   httpc,
	}

	err = s.signIn(ctx, silent)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if s.http == nil {
		// silent transport failure
		return nil, nil
	}
	return s, nil
}

func (s *Session) signIn(ctx context.Context, silent bool) error {
	ep := s.client.cfg.endpointAuth()
	if ep.wait > 0 {
		time.Sleep(ep.wait)
	}

	res, err := s.http.R().
		SetContext(ctx).
		SetHeaders(ep.headers).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"email": s.email,
			"pwd":   s.pwd,
		}).
		Post(ep.url)
	if err != nil {
		if silent {
			s.http = nil
			return nil
		}
		return &NetworkError{URL: ep.url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		if silent {
			s.http = nil
			return nil
		}
		return &NetworkError{URL: ep.url, Status: res.StatusCode()}
	}

	finalURL := ep.url
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalURL = res.RawResponse.Request.URL.String()
	}
	if strings.Contains(finalURL, "auth/email") {
		// bounced back to the login page: wrong credentials
		return ErrSignInFailed
	}
	return nil
}

// Email returns the account the session was signed in with.
func (s *Session) Email() string {
	return s.email
}

// Refresh re-authenticates with the stored credentials, replacing the
// transport cookies.
func (s *Session) Refresh(ctx context.Context) error {
	httpc, err := newHTTPClient(s.client.cfg)
	if err != nil {
		return err
	}
	old := s.http
	s.http = httpc
	err = s.signIn(ctx, false)
	if err != nil {
		s.http = old
		return err
	}
	return nil
}

// sessionBlob is the serialized credential state, cookies keyed by the
// host they were scoped to. It round-trips only through the same library
// version; it is not a stable wire format.
type sessionBlob struct {
	Email   string
	Pwd     string
	Cookies map[string][]*http.Cookie
}

// cookieHosts lists every host the session transport talks to; cookies
// for each must survive a serialize round trip.
func (c ClientConfig) cookieHosts() []string {
	return []string{c.BaseURL, c.APIBaseURL, c.MediaBaseURL}
}

// Serialize packs the session's credentials and cookies into an opaque
// blob. The blob is NOT encrypted: it contains the account password and
// live session cookies, so protect it accordingly at rest.
func (s *Session) Serialize() ([]byte, error) {
	blob := sessionBlob{
		Email:   s.email,
		Pwd:     s.pwd,
		Cookies: map[string][]*http.Cookie{},
	}
	if jar := s.http.GetClient().Jar; jar != nil {
		for _, host := range s.client.cfg.cookieHosts() {
			base, err := url.Parse(host)
			if err != nil {
				return nil, err
			}
			cookies := jar.Cookies(base)
			if len(cookies) > 0 {
				blob.Cookies[host] = cookies
			}
		}
	}

	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(blob)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeSession rebuilds a session from a Serialize blob without a
// new sign-in.
func (c *Client) DeserializeSession(data []byte) (*Session, error) {
	var blob sessionBlob
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&blob)
	if err != nil {
		return nil, err
	}

	httpc, err := newHTTPClient(c.cfg)
	if err != nil {
		return nil, err
	}
	if jar := httpc.GetClient().Jar; jar != nil {
		for host, cookies := range blob.Cookies {
			base, err := url.Parse(host)
			if err != nil {
				return nil, err
			}
			jar.SetCookies(base, cookies)
		}
	}

	return &Session{
		client: c,
		email:  blob.Email,
		pwd:    blob.Pwd,
		http:   httpc,
	}, nil
}

// DumpSession writes a session blob to sink. See Serialize for the
// security caveat.
func DumpSession(s *Session, sink io.Writer) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	_, err = sink.Write(data)
	return err
}

// LoadSession reads a session blob written by DumpSession.
func (c *Client) LoadSession(source io.Reader) (*Session, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return c.DeserializeSession(data)
}
