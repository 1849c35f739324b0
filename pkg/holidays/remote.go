package holidays

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/maypok86/otter/v2"
)

// DefaultURL is the public holiday feed.
const DefaultURL = "https://content.capta.co/Recruitment/WorkingDays.json"

const (
	defaultTTL            = time.Hour
	defaultRetryDelay     = 300 * time.Millisecond
	defaultAttemptTimeout = 10 * time.Second
	fetchAttempts         = 2
	maxBodyBytes          = 1 << 20
)

// HTTPClient is the subset of *http.Client used by Remote.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// snapshot is one successful fetch.
type snapshot struct {
	fetchedAt time.Time
	set       Set
}

// Remote fetches holidays from a JSON endpoint and reuses the result for a TTL.
// Concurrent callers that miss the cache share a single fetch.
type Remote struct {
	client         HTTPClient
	logger         *slog.Logger
	cache          *otter.Cache[string, snapshot]
	url            string
	ttl            time.Duration
	retryDelay     time.Duration
	attemptTimeout time.Duration
}

// Option configures a Remote.
type Option func(*Remote)

// WithURL sets the holiday endpoint.
func WithURL(url string) Option {
	return func(r *Remote) {
		if url != "" {
			r.url = url
		}
	}
}

// WithTTL sets how long a fetched set is reused. Non-positive values keep the default of one hour.
func WithTTL(ttl time.Duration) Option {
	return func(r *Remote) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(r *Remote) {
		if c != nil {
			r.client = c
		}
	}
}

// WithRetryDelay sets the pause between the two fetch attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(r *Remote) {
		if d >= 0 {
			r.retryDelay = d
		}
	}
}

// WithAttemptTimeout bounds each fetch attempt. A timed out attempt counts as failed.
func WithAttemptTimeout(d time.Duration) Option {
	return func(r *Remote) {
		if d > 0 {
			r.attemptTimeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Remote) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRemote creates a Remote with the given options.
func NewRemote(opts ...Option) *Remote {
	r := &Remote{
		url:            DefaultURL,
		ttl:            defaultTTL,
		retryDelay:     defaultRetryDelay,
		attemptTimeout: defaultAttemptTimeout,
		client:         &http.Client{Timeout: 30 * time.Second},
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	// One key per Remote: the endpoint URL.
	r.cache = otter.Must(&otter.Options[string, snapshot]{
		InitialCapacity:  1,
		ExpiryCalculator: otter.ExpiryWriting[string, snapshot](r.ttl),
	})

	return r
}

// Holidays returns the cached set while it is younger than the TTL, and
// fetches a fresh one otherwise. A failed fetch leaves the cache untouched and
// returns an error wrapping ErrUnavailable.
func (r *Remote) Holidays(ctx context.Context) (Set, error) {
	// Shared by every waiting caller; only the attempt timeouts bound it.
	snap, err := r.cache.Get(ctx, r.url, otter.LoaderFunc[string, snapshot](func(ctx context.Context, _ string) (snapshot, error) {
		return r.load(context.WithoutCancel(ctx))
	}))
	if err != nil {
		return Set{}, err
	}
	return snap.set, nil
}

// Refresh fetches the set now, replacing the cached one on success.
func (r *Remote) Refresh(ctx context.Context) (Set, error) {
	snap, err := r.load(ctx)
	if err != nil {
		return Set{}, err
	}
	r.cache.Set(r.url, snap)
	return snap.set, nil
}

// FetchedAt returns when the cached set was fetched, or the zero time when nothing is cached.
func (r *Remote) FetchedAt() time.Time {
	snap, ok := r.cache.GetIfPresent(r.url)
	if !ok {
		return time.Time{}
	}
	return snap.fetchedAt
}

// load runs the fetch attempts.
func (r *Remote) load(ctx context.Context) (snapshot, error) {
	start := time.Now()
	var set Set

	err := retry.Do(
		func() error {
			var err error
			set, err = r.fetch(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(r.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Warn("holiday fetch failed, retrying",
				"url", r.url,
				"attempt", n+1,
				"error", err,
			)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil && ctx.Err() != nil {
		// Caller gone, not an upstream failure.
		return snapshot{}, fmt.Errorf("holiday fetch abandoned: %w", ctx.Err())
	}
	if err != nil {
		r.logger.Error("holiday fetch failed after retries",
			"url", r.url,
			"error", err,
			"duration", time.Since(start),
		)
		return snapshot{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	r.logger.Info("holidays fetched",
		"url", r.url,
		"count", set.Len(),
		"duration", time.Since(start),
	)
	return snapshot{set: set, fetchedAt: time.Now()}, nil
}

// fetch performs one attempt.
func (r *Remote) fetch(ctx context.Context) (Set, error) {
	ctx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return Set{}, retry.Unrecoverable(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Set{}, fmt.Errorf("requesting %s: %w", r.url, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			r.logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Set{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, r.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Set{}, fmt.Errorf("reading response: %w", err)
	}

	set, err := Parse(body)
	if err != nil {
		return Set{}, fmt.Errorf("parsing response: %w", err)
	}
	return set, nil
}
