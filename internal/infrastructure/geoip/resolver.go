package geoip

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"rentalquotes/internal/usecase/interfaces"
)

// UnknownLocation is returned for every lookup that cannot be resolved.
const UnknownLocation = "Unknown"

const (
	DefaultEndpoint = "http://ip-api.com/json/"

	requestTimeout = 3 * time.Second

	// Success results live long; negative results only dampen repeat
	// lookups briefly so a transient upstream failure is not treated as
	// permanent.
	successTTL  = time.Hour
	negativeTTL = 15 * time.Minute

	// breakerThreshold failures within failureWindow open the breaker.
	breakerThreshold = 3
	failureWindow    = 5 * time.Minute
)

type cacheEntry struct {
	location  string
	expiresAt time.Time
}

// Resolver is a best-effort IP to location lookup with a response cache and
// a failure-count circuit breaker in front of the upstream call. It is the
// only cross-request shared mutable state in the derivation path and is
// safe for concurrent use.
type Resolver struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
	now      func() time.Time

	mu              sync.Mutex
	cache           map[string]cacheEntry
	failures        int
	failureWindowTo time.Time
}

var _ interfaces.IGeoResolver = (*Resolver)(nil)

func New(endpoint string, log *slog.Logger) *Resolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Resolver{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: requestTimeout,
			// The upstream answers directly; a redirect is itself a failure
			// signal.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log:   log,
		now:   time.Now,
		cache: make(map[string]cacheEntry),
	}
}

// WithClock fixes the clock for TTL and breaker tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

type lookupResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

// ResolveLocation never fails: private and unparsable addresses, cache
// misses behind an open breaker, upstream errors and timeouts all yield
// "Unknown".
func (r *Resolver) ResolveLocation(ctx context.Context, ip string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil || !isPublic(addr) {
		return UnknownLocation
	}

	key := addr.String()
	if loc, ok := r.cachedLocation(key); ok {
		return loc
	}
	if r.breakerOpen() {
		return UnknownLocation
	}

	loc, ok := r.lookup(ctx, key)
	if !ok {
		r.recordFailure(key)
		return UnknownLocation
	}
	r.recordSuccess(key, loc)
	return loc
}

func (r *Resolver) lookup(ctx context.Context, ip string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+ip, nil)
	if err != nil {
		return "", false
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debug("geo lookup failed", slog.String("ip", ip), slog.String("error", err.Error()))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status != "success" {
		return "", false
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{body.City, body.RegionName, body.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func (r *Resolver) cachedLocation(ip string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cache[ip]
	if !ok || r.now().After(e.expiresAt) {
		return "", false
	}
	return e.location, true
}

// breakerOpen reports whether the failure counter tripped within the decay
// window. An open breaker is consulted without incrementing anything: it is
// a throttle, not a correctness mechanism.
func (r *Resolver) breakerOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.now().After(r.failureWindowTo) {
		r.failures = 0
		return false
	}
	return r.failures >= breakerThreshold
}

func (r *Resolver) recordSuccess(ip, location string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = 0
	r.cache[ip] = cacheEntry{location: location, expiresAt: r.now().Add(successTTL)}
}

func (r *Resolver) recordFailure(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if now.After(r.failureWindowTo) {
		r.failures = 0
	}
	r.failures++
	r.failureWindowTo = now.Add(failureWindow)
	r.cache[ip] = cacheEntry{location: UnknownLocation, expiresAt: now.Add(negativeTTL)}
}

func isPublic(addr netip.Addr) bool {
	return addr.IsValid() &&
		!addr.IsPrivate() &&
		!addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsLinkLocalMulticast() &&
		!addr.IsMulticast() &&
		!addr.IsUnspecified()
}
