// Package blobstore is a thin HTTP client for the Supabase storage API that
// hosts the uploaded documents. Only the operations the migration needs are
// implemented: listing a folder and resolving a public URL.
package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PlaceholderName is the marker object Supabase stores in empty folders.
const PlaceholderName = ".emptyFolderPlaceholder"

// Object is one stored blob as reported by the list endpoint.
type Object struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// Client talks to one storage bucket.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// New creates a storage client for the given bucket.
func New(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type listRequest struct {
	Prefix string     `json:"prefix"`
	Limit  int        `json:"limit"`
	SortBy listSortBy `json:"sortBy"`
}

type listSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

// ListFolder lists the blobs stored directly under folder.
func (c *Client) ListFolder(ctx context.Context, folder string) ([]Object, error) {
	body, err := json.Marshal(listRequest{
		Prefix: folder,
		Limit:  100,
		SortBy: listSortBy{Column: "created_at", Order: "desc"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal list request: %w", err)
	}

	url := fmt.Sprintf("%s/storage/v1/object/list/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list %s: status %d: %s", folder, resp.StatusCode, payload)
	}

	var objects []Object
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return objects, nil
}

// PublicURL resolves the public download URL of a blob path within the bucket.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
