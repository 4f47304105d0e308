package tzdata

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/calshare/calshare/internal/logger"
)

const (
	// UserAgent identifies bundle fetches in server logs.
	UserAgent = "calshare/1.0 (github.com/calshare/calshare)"

	fetchTimeout    = 30 * time.Second
	fetchMaxElapsed = 2 * time.Minute
)

// Fetcher downloads timezone table bundles over HTTP and registers them.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a default HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Fetch downloads the bundle at url and registers its tables, retrying
// transient failures with exponential backoff. It returns the number of
// tables registered.
func (f *Fetcher) Fetch(url string) (int, error) {
	var count int

	attempt := func() error {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching bundle: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors won't resolve by retrying.
				return backoff.Permanent(err)
			}
			return err
		}

		count, err = LoadBundle(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = fetchMaxElapsed

	notify := func(err error, wait time.Duration) {
		logger.Warn("Bundle fetch failed, retrying", logger.Fields{
			"url":   url,
			"wait":  wait.String(),
			"error": err.Error(),
		})
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		return 0, err
	}

	logger.Info("Registered timezone tables", logger.Fields{
		"url":   url,
		"count": count,
	})
	return count, nil
}
