package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client uploads artwork images to the hosted object store over its
// storage REST API.
type Client struct {
	endpoint   string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

type Config struct {
	Endpoint string // e.g. https://<project>.supabase.co
	APIKey   string
	Bucket   string
}

func NewClient(config Config) *Client {
	return &Client{
		endpoint: strings.TrimRight(config.Endpoint, "/"),
		apiKey:   config.APIKey,
		bucket:   config.Bucket,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Upload stores an object and returns its public URL.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.endpoint, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return "", fmt.Errorf("object store returned status %d: %s", resp.StatusCode, string(body))
	}

	return c.PublicURL(path), nil
}

// Remove deletes an object. Missing objects are not an error.
func (c *Client) Remove(ctx context.Context, path string) error {
	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.endpoint, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("object store returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// PublicURL builds the public read URL for an object path.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.endpoint, c.bucket, path)
}

// ObjectPath recovers the object path from one of this client's public URLs.
// Reports false for URLs that do not belong to this endpoint and bucket.
func (c *Client) ObjectPath(publicURL string) (string, bool) {
	prefix := c.PublicURL("")

	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}

	path := strings.TrimPrefix(publicURL, prefix)

	return path, path != ""
}
