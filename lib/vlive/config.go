package vlive

import (
	"vlivego/lib/configutil"
)

// ClientConfig carries the constants every endpoint builder needs. A zero
// value is usable after Defaults; tests point BaseURL at a local server.
type ClientConfig struct {
	// AppID is the web app id the JSON endpoints expect on every call.
	AppID string `json:"app_id"`
	// BaseURL is the scheme+host of the main site.
	BaseURL string `json:"base_url"`
	// APIBaseURL is the scheme+host of the legacy channel api.
	APIBaseURL string `json:"api_base_url"`
	// MediaBaseURL is the scheme+host of the VOD playback api.
	MediaBaseURL string `json:"media_base_url"`

	GCC            string `json:"gcc"`
	Locale         string `json:"locale"`
	AcceptLanguage string `json:"accept_language"`
	UserAgent      string `json:"user_agent"`
}

const defaultAppID = "8c6cc7b45d2568fb668be6e05b6e5a3b"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/87.0.4280.88 " +
	"Safari/537.36"

// Defaults fills in every unset field with the platform's stock values.
func (c ClientConfig) Defaults() ClientConfig {
	if c.AppID == "" {
		c.AppID = defaultAppID
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://www.vlive.tv"
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://api.vfan.vlive.tv"
	}
	if c.MediaBaseURL == "" {
		c.MediaBaseURL = "https://apis.naver.com"
	}
	if c.GCC == "" {
		c.GCC = "KR"
	}
	if c.Locale == "" {
		c.Locale = "ko_KR"
	}
	if c.AcceptLanguage == "" {
		c.AcceptLanguage = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}

// LoadConfig reads a json5 config file (plus any .local override next to
// it) and applies defaults on top.
func LoadConfig(path string) (ClientConfig, error) {
	cfg, err := configutil.ReadConfig[ClientConfig](path)
	if err != nil {
		return ClientConfig{}, err
	}
	return cfg.Defaults(), nil
}
