package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNoProfile is returned for any non-200 upstream response, including
// unknown usernames and rate-limited requests.
var ErrNoProfile = errors.New("no github profile found")

// Client lists public repositories for a GitHub user. The base URL is
// configurable so tests can point it at a local server.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
}

func NewClient(baseURL, clientID, clientSecret string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "devconnect-api")
	return &Client{http: c, clientID: clientID, clientSecret: clientSecret}
}

// ListRepos fetches up to 50 repositories sorted by creation date ascending
// and forwards the upstream JSON body untouched.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("per_page", "50").
		SetQueryParam("sort", "created:asc")
	if c.clientID != "" {
		req.SetQueryParam("client_id", c.clientID)
		req.SetQueryParam("client_secret", c.clientSecret)
	}

	resp, err := req.Get(fmt.Sprintf("/users/%s/repos", url.PathEscape(username)))
	if err != nil {
		return nil, fmt.Errorf("github repos request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, ErrNoProfile
	}
	return json.RawMessage(resp.Body()), nil
}
