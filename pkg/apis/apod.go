package apis

import (
	"encoding/json"
	"fmt"
	"time"

	"apilab/internal/model"
	"apilab/pkg/fetch"
)

const defaultAPODBaseURL = "https://api.nasa.gov"

// DemoKey is the service's public rate-limited placeholder credential.
const DemoKey = "DEMO_KEY"

// APODClient talks to the astronomy-picture-of-the-day service. The key
// travels as an api_key query parameter or a bearer header, per Placement.
type APODClient struct {
	baseURL    string
	credential fetch.Credential
	fetcher    *fetch.Client
}

type APODConfig struct {
	BaseURL    string
	APIKey     string
	Placement  fetch.Placement
	QueryParam string
	Timeout    time.Duration
}

func NewAPODClient(cfg APODConfig) *APODClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAPODBaseURL
	}

	key := cfg.APIKey
	if key == "" {
		key = DemoKey
	}

	return &APODClient{
		baseURL: baseURL,
		credential: fetch.Credential{
			Key:        key,
			Placement:  cfg.Placement,
			QueryParam: cfg.QueryParam,
		},
		fetcher: fetch.NewClient(cfg.Timeout),
	}
}

func (c *APODClient) Name() string {
	return "APOD"
}

// Picture fetches the record for date, or today's when date is empty.
func (c *APODClient) Picture(date string) (*model.Picture, error) {
	var pic model.Picture

	if err := c.fetcher.GetInto(c.request(date), &pic); err != nil {
		return nil, fmt.Errorf("apod fetch: %w", err)
	}

	return &pic, nil
}

// PictureJSON returns the raw body for presentation, key order intact.
func (c *APODClient) PictureJSON(date string) (json.RawMessage, error) {
	raw, err := c.fetcher.GetJSON(c.request(date))
	if err != nil {
		return nil, fmt.Errorf("apod fetch: %w", err)
	}

	return raw, nil
}

func (c *APODClient) request(date string) *fetch.Request {
	cred := c.credential
	req := &fetch.Request{
		URL:        c.baseURL + "/planetary/apod",
		Credential: &cred,
	}

	if date != "" {
		req.Query = map[string]string{"date": date}
	}

	return req
}
