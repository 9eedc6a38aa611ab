package fetch

import (
	"fmt"
	"net/http"
	"net/url"
)

// Placement selects where a credential travels on the wire.
type Placement string

const (
	PlaceQuery  Placement = "query"
	PlaceHeader Placement = "header"
)

const defaultQueryParam = "api_key"

// Credential is an opaque API key plus where to put it. The zero Placement
// means query-string, the convention most public APIs document.
type Credential struct {
	Key        string
	Placement  Placement
	QueryParam string
}

type Request struct {
	URL        string
	Query      map[string]string
	Headers    map[string]string
	Credential *Credential
}

// Build assembles the ready-to-send GET request. The credential ends up in
// exactly one place: the query string or the Authorization header, never both.
func (r *Request) Build() (*http.Request, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", r.URL, err)
	}

	q := u.Query()
	for k, v := range r.Query {
		q.Set(k, v)
	}

	if c := r.Credential; c != nil && c.Placement != PlaceHeader {
		param := c.QueryParam
		if param == "" {
			param = defaultQueryParam
		}
		q.Set(param, c.Key)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	if c := r.Credential; c != nil && c.Placement == PlaceHeader {
		req.Header.Set("Authorization", "Bearer "+c.Key)
	}

	return req, nil
}
