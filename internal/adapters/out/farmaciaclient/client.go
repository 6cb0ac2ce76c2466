// Package farmaciaclient talks to the FarmaDelivery HTTP API on behalf of the
// panels. It keeps the csrftoken cookie in a jar and echoes it back in the
// X-CSRFToken header on every POST.
package farmaciaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"farmadelivery/internal/generated/servers"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"

	maxBodyBytes = 1 << 20
)

// client is the transport shared by the pharmacy and courier clients.
// primePath is any GET route of the API; it is requested once when the jar
// has no CSRF cookie yet.
type client struct {
	base      *url.URL
	http      *http.Client
	primePath string
}

func newClient(baseURL string, timeout time.Duration, primePath string) (*client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &client{
		base:      base,
		http:      &http.Client{Timeout: timeout, Jar: jar},
		primePath: primePath,
	}, nil
}

func (c *client) url(path string) string {
	return c.base.String() + path
}

// get performs a GET and returns the body of a 2xx response.
func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return body, nil
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// post sends a form-encoded action and decodes its Result body. Refusals
// come back with a 4xx status and a Result body, so any status is accepted
// as long as the body decodes.
func (c *client) post(ctx context.Context, path string, form url.Values, header http.Header) (servers.Result, error) {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return servers.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		return servers.Result{}, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(csrfHeaderName, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return servers.Result{}, err
	}
	defer resp.Body.Close()

	var result servers.Result
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); err != nil {
		return servers.Result{}, fmt.Errorf("POST %s: status %d: %w", path, resp.StatusCode, err)
	}
	if !result.Success && result.Error == nil {
		return servers.Result{}, fmt.Errorf("POST %s: status %d without error message", path, resp.StatusCode)
	}
	return result, nil
}

func (c *client) csrfToken(ctx context.Context) (string, error) {
	if token := c.cookie(csrfCookieName); token != "" {
		return token, nil
	}
	if _, err := c.get(ctx, c.primePath); err != nil {
		return "", fmt.Errorf("fetch csrf token: %w", err)
	}
	if token := c.cookie(csrfCookieName); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("server did not issue a %s cookie", csrfCookieName)
}

func (c *client) cookie(name string) string {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
