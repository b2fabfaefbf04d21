// Package http provides the HTTP client seqget uses to retrieve
// sequence items.
//
// The Client in this package handles:
//   - User-Agent headers and per-request timeouts
//   - Atomic downloads: content streams to a ".part" file that is
//     renamed into place only on success
//   - File size retrieval via HEAD requests
//   - Failure classification via FetchError (network, HTTP status,
//     timeout, canceled)
//
// # Basic Usage
//
//	client := http.NewClient("seqget", 5*time.Minute)
//
//	err := client.Fetch(ctx, url, "/path/to/file.jpg", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
//	var fe *http.FetchError
//	if errors.As(err, &fe) && fe.Kind == http.KindHTTPStatus {
//	    fmt.Println("server said", fe.StatusCode)
//	}
package http
