package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is implemented by components that expose a reachability probe.
// Ping must return nil when the component is healthy.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker periodically probes a dependency and caches the result so the
// health endpoint never blocks on a slow probe.
type Checker struct {
	name    string
	dep     Pinger
	timeout time.Duration
	healthy atomic.Int32
	log     zerolog.Logger
}

func NewChecker(name string, dep Pinger, log zerolog.Logger, probeTimeout time.Duration) *Checker {
	c := &Checker{name: name, dep: dep, timeout: probeTimeout, log: log}
	c.healthy.Store(0)
	return c
}

func (c *Checker) Name() string { return c.name }

// IsHealthy returns the cached probe result.
func (c *Checker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes the dependency on the given interval until ctx is done,
// logging transitions.
func (c *Checker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.dep.Ping(probeCtx)
		cancel()

		if err == nil {
			c.healthy.Store(1)
		} else {
			c.healthy.Store(0)
		}
		cur := c.healthy.Load()
		if cur != prev {
			if cur == 1 {
				c.log.Info().Str("dependency", c.name).Msg("health: UP")
			} else {
				c.log.Error().Str("dependency", c.name).Err(err).Msg("health: DOWN")
			}
			prev = cur
		}
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
