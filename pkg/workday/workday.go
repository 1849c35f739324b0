// Package workday computes business-time offsets: a UTC instant plus N business
// days and/or M business hours on the Bogota work calendar.
package workday

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/bizcal"
	"github.com/codeGROOVE-dev/workday/pkg/holidays"
	"github.com/codeGROOVE-dev/workday/pkg/tzconvert"
)

// Request is one calculation. Zero fields are absent.
// Callers must set at least one of Days and Hours.
type Request struct {
	Date  string // optional UTC base, e.g. "2023-01-06T22:00:00Z"; empty means now
	Days  int
	Hours int
}

// Engine computes working dates against a holiday provider.
type Engine struct {
	holidays holidays.Provider
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of "now" used when a request has no Date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine.
func New(provider holidays.Provider, opts ...Option) *Engine {
	e := &Engine{
		holidays: provider,
		now:      tzconvert.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate returns the UTC instant, at second precision, reached from the
// request's base after adding its business days and then its business hours.
//
// Days snap the base backward to the latest working instant first; hours snap
// forward to the next one. Days always run before hours.
func (e *Engine) Calculate(ctx context.Context, req Request) (string, error) {
	if e.holidays == nil {
		return "", &Error{Op: "calculate", Kind: KindInternal, Err: errors.New("no holiday provider")}
	}

	h, err := e.holidays.Holidays(ctx)
	if err != nil {
		kind := KindInternal
		if errors.Is(err, holidays.ErrUnavailable) {
			kind = KindUpstreamUnavailable
		}
		return "", &Error{Op: "holidays", Kind: kind, Err: err}
	}

	base, err := e.base(req.Date)
	if err != nil {
		return "", &Error{Op: "parse date", Kind: KindInvalidInput, Err: err}
	}

	cur := base
	if req.Days > 0 {
		cur = bizcal.SnapBackward(cur, h)
		cur = bizcal.AddDays(cur, req.Days, h)
	}
	if req.Hours > 0 {
		cur = bizcal.SnapForward(cur, h)
		cur = bizcal.AddHours(cur, req.Hours, h)
	}

	result := tzconvert.ToUTC(cur)
	e.logger.Debug("working date calculated",
		"base", tzconvert.ToUTC(base),
		"days", req.Days,
		"hours", req.Hours,
		"holidays", h.Len(),
		"result", result,
	)
	return result, nil
}

func (e *Engine) base(date string) (time.Time, error) {
	if date == "" {
		return e.now().In(tzconvert.Location()), nil
	}
	return tzconvert.ToLocal(date)
}
