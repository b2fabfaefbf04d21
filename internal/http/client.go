package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"
)

// Client wraps HTTP operations for downloading sequence items.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Atomic file downloads (temp file + rename)
//   - File size retrieval via HEAD requests
//
// Example usage:
//
//	client := NewClient("seqget", 5*time.Minute)
//
//	err := client.Fetch(ctx, url, "/path/to/a0001.jpg", func(written, total int64) {
//	    percent := float64(written) / float64(total) * 100
//	    fmt.Printf("%.1f%%\n", percent)
//	})
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given User-Agent and
// per-request timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// FileSize returns the size of a file at the given URL via HEAD
// request. Useful for checking whether an existing local file matches
// the remote one before re-downloading.
func (c *Client) FileSize(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, classify(ctx, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, classify(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &FetchError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, URL: url}
	}
	if resp.ContentLength < 0 {
		return 0, &FetchError{Kind: KindNetwork, URL: url, Err: errNoLength}
	}

	return resp.ContentLength, nil
}

// Fetch downloads url into destPath with an optional progress callback.
//
// The content is streamed to destPath + ".part" and renamed into place
// only after the whole body arrived, so a failed or canceled fetch
// never leaves a half-written file at destPath. The temp file is
// removed on failure.
//
// Failures are returned as *FetchError so callers can distinguish
// status errors, timeouts and cancellations.
func (c *Client) Fetch(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return classify(ctx, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return &FetchError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, URL: url}
	}

	tmpPath := destPath + ".part"
	file, err := os.Create(tmpPath)
	if err != nil {
		return classify(ctx, url, err)
	}

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	_, err = io.Copy(writer, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return classify(ctx, url, err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return classify(ctx, url, err)
	}

	return nil
}
