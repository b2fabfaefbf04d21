// Package download provides the orchestration logic for fetching an
// expanded URL sequence to local files.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Parse the bracket pattern out of the target URL
//  2. Expand it into tokens and concrete URLs
//  3. Resolve a distinct output path per item
//  4. Fetch every item, bounded by MaxConcurrentFetches
//  5. Aggregate per-item outcomes into a Summary
//
// # Basic Usage
//
//	client := http.NewClient(settings.UserAgent, settings.FetchTimeout)
//	manager := download.NewManager(settings, client, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize("http://example.com/a[1-100].jpg"); err != nil {
//	    log.Fatal(err) // malformed pattern, too large, bad output dir
//	}
//
//	summary := manager.Run(ctx)
//	fmt.Printf("%d ok, %d failed\n", summary.Succeeded, summary.Failed)
//
// # Failure model
//
// Initialize errors are fatal and occur before any network access. A
// failed fetch never aborts the run: the item is recorded in the
// Summary and the remaining items proceed. Cancellation marks the
// affected items as failed with a canceled fetch error.
//
// # Retry Logic
//
// Transient failures (network, timeout) are retried with exponential
// backoff, configurable via settings.DownloadMaxRetries and
// settings.DownloadRetryCooldown. HTTP status errors and cancellations
// are not retried.
package download
