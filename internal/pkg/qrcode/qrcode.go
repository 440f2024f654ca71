package qrcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxImageBytes caps the size of a fetched QR image
const MaxImageBytes = 2 << 20

// ReferralLink builds "<base>?ref=<code>"
func ReferralLink(base, code string) string {
	return base + "?ref=" + url.QueryEscape(code)
}

// ImageURL embeds data into the QR image service query string
func ImageURL(serviceURL, data string) string {
	q := url.Values{}
	q.Set("size", "300x300")
	q.Set("data", data)
	q.Set("color", "0f172a")
	q.Set("bgcolor", "ffffff")
	q.Set("margin", "10")
	return serviceURL + "?" + q.Encode()
}

// FileName returns the download name for a partner's QR image
func FileName(code string) string {
	return fmt.Sprintf("rupivo-partner-qr-%s.png", code)
}

// Client fetches rendered QR images from the image service
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new QR image client
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads the image at imageURL and returns its bytes and content type
func (c *Client) Fetch(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("qr service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, "", fmt.Errorf("qr image exceeds %d bytes", MaxImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/png"
	}
	return data, contentType, nil
}
