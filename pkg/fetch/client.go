package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Client issues single synchronous GETs and classifies the outcome: transport
// failures come back as wrapped network errors, 4xx/5xx statuses as
// *StatusError, bodies that are not JSON as *DecodeError.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do sends the request and returns the status and body of any non-error
// response. A status of 400 or above becomes a *StatusError.
func (c *Client) Do(req *Request) (*Response, error) {
	httpReq, err := req.Build()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// GetJSON fetches req and returns the raw JSON body, byte for byte as the
// server sent it.
func (c *Client) GetJSON(req *Request) (json.RawMessage, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}

	if !json.Valid(resp.Body) {
		return nil, &DecodeError{Err: errors.New("body is not valid JSON")}
	}

	return json.RawMessage(resp.Body), nil
}

// GetInto fetches req and decodes the JSON body into v.
func (c *Client) GetInto(req *Request, v any) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

type Response struct {
	StatusCode int
	Body       []byte
}
