// Package objectstore implements the BlobStore port against an HTTP object
// storage service. Objects are addressed by opaque path strings appended to
// the store's base URL, and requests authenticate with a bearer token.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resumeflow/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client talks to the object storage service over HTTP. The embedded
// http.Client timeout bounds every call, so one slow store request cannot
// stall a dispatch batch.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates an object store client for the given base URL and bearer
// token. A non-positive timeout falls back to 30 seconds.
func NewClient(baseURL, authToken string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Download fetches the object at the given path.
// Returns an errs.ObjectNotFoundError when the object is missing.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("object store request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("path", path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("object store returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("object store response read failed: %w", err)
	}

	return content, nil
}

// Upload stores content at the given path, replacing any existing object.
func (c *Client) Upload(ctx context.Context, path string, content []byte, contentType string) error {
	req, err := c.newRequest(ctx, http.MethodPut, path, bytes.NewReader(content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("object store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("object store returned status %d", resp.StatusCode)
	}

	return nil
}

// Remove deletes the object at the given path.
// Returns an errs.ObjectNotFoundError when the object is already gone.
func (c *Client) Remove(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("object store request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("path", path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("object store returned status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("object store request creation failed: %w", err)
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	return req, nil
}
