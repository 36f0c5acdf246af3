// Package vlive is a client for VLIVE's private web endpoints: posts,
// comments, channels, schedules, live/VOD play info and upcoming listings,
// optionally signed in with a user session for membership content.
package vlive

import (
	"context"
	"encoding/json"
	"net/http/cookiejar"
	"slices"
	"time"
	"vlivego/lib/envelope"
	"vlivego/lib/restyutil"
	"vlivego/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// Client issues anonymous requests. Calls that take a *Session use the
// session's signed-in transport instead; the client itself never mutates a
// session.
type Client struct {
	cfg  ClientConfig
	http *resty.Client
}

type ClientOptions struct {
	Config ClientConfig
	// DebugOutput, when set, receives a raw dump of every request and
	// response (only while slog debug logging is enabled).
	DebugOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	cfg := opts.Config.Defaults()
	httpc, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	restyutil.InstrumentClient(httpc, opts.DebugOutput)

	return &Client{cfg: cfg, http: httpc}, nil
}

// Config returns the resolved configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.cfg
}

func newHTTPClient(cfg ClientConfig) (*resty.Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeader("Accept-Language", cfg.AcceptLanguage)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "vlive/http")
	return client, nil
}

func (c *Client) httpFor(session *Session) *resty.Client {
	if session != nil {
		return session.http
	}
	return c.http
}

// response is the transport-level result handed to the normalizer. ok is
// gated by the endpoint's acceptable-status set, not by 2xx: a 403 on a
// membership endpoint is still a response worth normalizing.
type response struct {
	status   int
	body     []byte
	finalURL string
	ok       bool
}

func (r *response) json() (map[string]any, error) {
	var decoded map[string]any
	err := json.Unmarshal(r.body, &decoded)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func (c *Client) get(ctx context.Context, httpc *resty.Client, ep endpoint) (*response, error) {
	// fixed politeness delay, the platform bans overly chatty clients
	if ep.wait > 0 {
		time.Sleep(ep.wait)
	}

	res, err := httpc.R().
		SetContext(ctx).
		SetQueryParams(ep.params).
		SetHeaders(ep.headers).
		Get(ep.url)
	if err != nil {
		return nil, err
	}

	finalURL := ep.url
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalURL = res.RawResponse.Request.URL.String()
	}
	return &response{
		status:   res.StatusCode(),
		body:     res.Body(),
		finalURL: finalURL,
		ok:       slices.Contains(ep.accept, res.StatusCode()),
	}, nil
}

// fetchNormalized is the shared fetch path of every JSON endpoint: one
// request, acceptable-status check, decode, envelope normalization. Under
// silent every failure degrades to (nil, nil).
func (c *Client) fetchNormalized(ctx context.Context, ep endpoint, session *Session, silent bool) (map[string]any, error) {
	res, err := c.get(ctx, c.httpFor(session), ep)
	if err != nil {
		if silent {
			return nil, nil
		}
		return nil, &NetworkError{URL: ep.url, Err: err}
	}
	if !res.ok {
		if silent {
			return nil, nil
		}
		return nil, &NetworkError{URL: ep.url, Status: res.status}
	}

	raw, err := res.json()
	if err != nil {
		if silent {
			return nil, nil
		}
		return nil, &ParseError{Message: "failed to decode response body", Err: err}
	}
	return envelope.Normalize(raw, silent)
}
