package scrape

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/mdscrape"
	"golang.org/x/time/rate"
)

var _ mdscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out fetches to the same host with one token bucket
// per host. Hosts are compared case-insensitively. Fetches to different
// hosts never wait on each other.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter returns a limiter allowing rps fetches per second to
// each host, with no bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a fetch to domain is allowed.
// It returns the context's error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[domain] = b
	}
	return b
}
