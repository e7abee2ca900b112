// Package health tracks whether the API can serve quiz requests.
package health

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"economy-quiz/internal/domain"
	"economy-quiz/internal/logger"

	"go.uber.org/zap"
)

type Status string

const (
	StatusReady    Status = "ready"
	StatusDegraded Status = "degraded"
)

const (
	componentUp   = "up"
	componentDown = "down"

	probeTimeout = 2 * time.Second
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the outcome of a single Check.
type Report struct {
	Status   Status
	Database string
	Cache    string // empty when no cache is configured
	Err      error
}

// Checker holds the readiness flag. It starts degraded; the startup retry marks it
// ready, and Check moves it either way based on a live database ping.
type Checker struct {
	db           Pinger
	ensureSchema func(ctx context.Context) error
	cache        domain.Cache

	ready atomic.Bool

	schemaMu      sync.Mutex
	schemaApplied bool
}

// NewChecker creates a Checker. ensureSchema runs at most once successfully,
// the first time the database is seen up; cache may be nil.
func NewChecker(db Pinger, ensureSchema func(ctx context.Context) error, cache domain.Cache) *Checker {
	return &Checker{db: db, ensureSchema: ensureSchema, cache: cache}
}

// MarkReady records that the database is reachable and the schema is in place.
func (c *Checker) MarkReady() {
	c.schemaMu.Lock()
	c.schemaApplied = true
	c.schemaMu.Unlock()
	c.ready.Store(true)
}

// MarkDegraded records a failed startup.
func (c *Checker) MarkDegraded(err error) {
	c.ready.Store(false)
	logger.Get().Error("Service is running in degraded mode", zap.Error(err))
}

// Ready reports the last known readiness.
func (c *Checker) Ready() bool {
	return c.ready.Load()
}

// Check pings the database (and the cache, if any) and updates readiness.
func (c *Checker) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	report := Report{Status: StatusReady, Database: componentUp}

	if err := c.db.PingContext(ctx); err != nil {
		report.Status = StatusDegraded
		report.Database = componentDown
		report.Err = err
	} else if err := c.applySchemaOnce(ctx); err != nil {
		report.Status = StatusDegraded
		report.Err = err
	}

	if c.cache != nil {
		report.Cache = componentUp
		if err := c.cache.Ping(ctx); err != nil {
			report.Cache = componentDown
			logger.Get().Warn("Cache ping failed", zap.Error(err))
		}
	}

	wasReady := c.ready.Swap(report.Status == StatusReady)
	switch {
	case wasReady && report.Status != StatusReady:
		logger.Get().Warn("Service became degraded", zap.Error(report.Err))
	case !wasReady && report.Status == StatusReady:
		logger.Get().Info("Service is ready")
	}
	return report
}

// Watch re-checks every interval until the service is ready or ctx is done,
// so a degraded start recovers without anyone polling /health.
func (c *Checker) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !c.Ready() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) applySchemaOnce(ctx context.Context) error {
	c.schemaMu.Lock()
	defer c.schemaMu.Unlock()
	if c.schemaApplied || c.ensureSchema == nil {
		return nil
	}
	if err := c.ensureSchema(ctx); err != nil {
		return err
	}
	c.schemaApplied = true
	return nil
}
