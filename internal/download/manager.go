package download

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/seqget/seqget/internal/config"
	"github.com/seqget/seqget/internal/http"
	ioutils "github.com/seqget/seqget/internal/io"
	"github.com/seqget/seqget/internal/model"
	"github.com/seqget/seqget/internal/pattern"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher retrieves one URL into a local file. *http.Client is the
// production implementation; tests substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
	FileSize(ctx context.Context, url string) (int64, error)
}

// Manager drives a whole run: it parses the target pattern, expands it
// into items, and fetches each one, collecting per-item outcomes.
//
// Individual fetch failures never abort the run; they are recorded and
// reported in the final Summary, in sequence order regardless of the
// order fetches completed in.
type Manager struct {
	settings *config.Settings
	fetcher  Fetcher

	tmpl  pattern.Template
	items []*model.Item

	doneItems     int32
	receivedBytes int64

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager that downloads through fetcher.
func NewManager(settings *config.Settings, fetcher Fetcher, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		fetcher:    fetcher,
		onProgress: onProgress,
	}
}

// Initialize parses and expands targetURL and resolves output paths.
//
// Errors here are fatal and happen before any network access: a
// malformed or reversed pattern, an expansion larger than
// MaxSequenceLength, or an unusable output directory.
func (m *Manager) Initialize(targetURL string) error {
	expr, tmpl, err := pattern.Parse(targetURL)
	if err != nil {
		return err
	}
	if err := expr.Validate(m.settings.MaxSequenceLength); err != nil {
		return err
	}

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	outputCfg := m.settings.ToOutputConfig()
	seen := make(map[string]bool)

	index := 0
	for token, url := range tmpl.Expand(expr) {
		item := model.NewItem(index, token, url, outputCfg)
		item.Path = ioutils.UniquePath(item.Path, func(p string) bool { return seen[p] })
		seen[item.Path] = true
		m.items = append(m.items, item)
		index++
	}

	m.tmpl = tmpl
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Pattern %s expands to %d file(s)", tmpl, len(m.items)),
		Level:   LevelInfo,
	})
	return nil
}

// Items returns the expanded items in sequence order. Only valid after
// Initialize succeeded.
func (m *Manager) Items() []*model.Item {
	return m.items
}

// Run fetches every item and returns the aggregate summary. Item
// failures, including cancellations, are absorbed into the summary;
// Run itself always completes.
//
// At most MaxConcurrentFetches downloads are in flight at once. With a
// limit of one the run is strictly sequential and stops scheduling new
// items as soon as ctx is canceled; the untried remainder is recorded
// as canceled.
func (m *Manager) Run(ctx context.Context) *model.Summary {
	results := make([]model.FetchResult, len(m.items))

	if m.settings.MaxConcurrentFetches <= 1 {
		m.runSequential(ctx, results)
	} else {
		m.runConcurrent(ctx, results)
	}

	summary := &model.Summary{Total: len(results)}
	for _, r := range results {
		if r.Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
			summary.Failures = append(summary.Failures, r)
		}
	}
	return summary
}

func (m *Manager) runSequential(ctx context.Context, results []model.FetchResult) {
	for i, item := range m.items {
		if ctx.Err() != nil {
			m.cancelRemaining(ctx, results, i)
			return
		}
		results[i] = model.FetchResult{Item: item, Err: m.fetchItem(ctx, item)}
	}
}

func (m *Manager) runConcurrent(ctx context.Context, results []model.FetchResult) {
	g := new(errgroup.Group)
	g.SetLimit(m.settings.MaxConcurrentFetches)

	for i, item := range m.items {
		g.Go(func() error {
			// Each goroutine writes only its own slot.
			results[i] = model.FetchResult{Item: item, Err: m.fetchItem(ctx, item)}
			return nil
		})
	}

	g.Wait()
}

// cancelRemaining records the items a canceled sequential run never
// attempted.
func (m *Manager) cancelRemaining(ctx context.Context, results []model.FetchResult, from int) {
	for i := from; i < len(m.items); i++ {
		results[i] = model.FetchResult{
			Item: m.items[i],
			Err:  &http.FetchError{Kind: http.KindCanceled, URL: m.items[i].URL, Err: ctx.Err()},
		}
	}
}

// fetchItem downloads one item, retrying transient failures with
// exponential backoff. HTTP status errors and cancellations are final.
func (m *Manager) fetchItem(ctx context.Context, item *model.Item) error {
	if m.settings.SkipExisting && m.skipExisting(ctx, item) {
		atomic.AddInt32(&m.doneItems, 1)
		return nil
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("%s => %s", item.URL, item.Path),
		Level:   LevelVerbose,
	})

	var lastWritten int64
	onProgress := func(written, total int64) {
		atomic.AddInt64(&m.receivedBytes, written-lastWritten)
		lastWritten = written
	}

	var err error
	for tries := 0; ; tries++ {
		err = m.fetcher.Fetch(ctx, item.URL, item.Path, onProgress)
		if err == nil {
			break
		}

		var fe *http.FetchError
		if !errors.As(err, &fe) || !fe.Temporary() || tries >= m.settings.DownloadMaxRetries {
			break
		}

		// A restarted fetch begins the .part file from scratch.
		atomic.AddInt64(&m.receivedBytes, -lastWritten)
		lastWritten = 0

		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, item.URL),
			Level:   LevelWarning,
		})
		m.waitForRetry(ctx, tries)
	}

	if err != nil {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Failed %s: %v", item.URL, err),
			Level:   LevelError,
		})
		return err
	}

	atomic.AddInt32(&m.doneItems, 1)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloaded %s", item.Path),
		Level:   LevelSuccess,
	})
	return nil
}

// skipExisting reports whether the item's file is already present with
// the size the server advertises.
func (m *Manager) skipExisting(ctx context.Context, item *model.Item) bool {
	info, err := os.Stat(item.Path)
	if err != nil {
		return false
	}

	size, err := m.fetcher.FileSize(ctx, item.URL)
	if err != nil || size != info.Size() {
		return false
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Skipping existing %s", item.Path),
		Level:   LevelVerbose,
	})
	return true
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (filesDone, filesTotal int32, receivedBytes int64) {
	return atomic.LoadInt32(&m.doneItems), int32(len(m.items)), atomic.LoadInt64(&m.receivedBytes)
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
