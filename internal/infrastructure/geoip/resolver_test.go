package geoip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestResolveLocation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"success","city":"Manchester","regionName":"England","country":"United Kingdom"}`)
	}))
	defer srv.Close()

	r := New(srv.URL+"/", discardLogger())
	got := r.ResolveLocation(context.Background(), "81.2.69.142")
	if got != "Manchester, England, United Kingdom" {
		t.Fatalf("unexpected location: %q", got)
	}
}

func TestResolveLocation_SkipsPrivateAndInvalidAddresses(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	r := New(srv.URL+"/", discardLogger())
	for _, ip := range []string{"", "not-an-ip", "192.168.1.10", "10.0.0.5", "127.0.0.1", "::1", "0.0.0.0"} {
		if got := r.ResolveLocation(context.Background(), ip); got != UnknownLocation {
			t.Fatalf("ip %q: expected %q, got %q", ip, UnknownLocation, got)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no upstream calls, got %d", hits)
	}
}

func TestResolveLocation_CachesSuccessfulLookups(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `{"status":"success","city":"Leeds","regionName":"England","country":"United Kingdom"}`)
	}))
	defer srv.Close()

	r := New(srv.URL+"/", discardLogger())
	for i := 0; i < 3; i++ {
		if got := r.ResolveLocation(context.Background(), "81.2.69.142"); got != "Leeds, England, United Kingdom" {
			t.Fatalf("call %d: unexpected location %q", i, got)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", hits)
	}
}

func TestResolveLocation_CachesFailuresBriefly(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `{"status":"fail"}`)
	}))
	defer srv.Close()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := New(srv.URL+"/", discardLogger()).WithClock(fixedClock(now))

	if got := r.ResolveLocation(context.Background(), "81.2.69.142"); got != UnknownLocation {
		t.Fatalf("expected %q, got %q", UnknownLocation, got)
	}
	// Second lookup of the same address within the negative TTL stays local.
	if got := r.ResolveLocation(context.Background(), "81.2.69.142"); got != UnknownLocation {
		t.Fatalf("expected %q, got %q", UnknownLocation, got)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", hits)
	}
}

func TestResolveLocation_BreakerTripsAfterRepeatedFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := New(srv.URL+"/", discardLogger()).WithClock(fixedClock(now))

	// Distinct addresses so the negative cache cannot absorb the calls.
	for i, ip := range []string{"81.2.69.1", "81.2.69.2", "81.2.69.3"} {
		if got := r.ResolveLocation(context.Background(), ip); got != UnknownLocation {
			t.Fatalf("failure %d: expected %q, got %q", i, UnknownLocation, got)
		}
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", hits)
	}

	// Fourth lookup short-circuits without touching the network.
	if got := r.ResolveLocation(context.Background(), "81.2.69.4"); got != UnknownLocation {
		t.Fatalf("expected %q, got %q", UnknownLocation, got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("breaker open: expected no further upstream calls, got %d", hits)
	}
}

func TestResolveLocation_BreakerDecays(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `{"status":"success","city":"Bristol","regionName":"England","country":"United Kingdom"}`)
	}))
	defer srv.Close()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := New(srv.URL+"/", discardLogger()).WithClock(fixedClock(now))
	r.mu.Lock()
	r.failures = breakerThreshold
	r.failureWindowTo = now.Add(failureWindow)
	r.mu.Unlock()

	if got := r.ResolveLocation(context.Background(), "81.2.69.142"); got != UnknownLocation {
		t.Fatalf("expected open breaker, got %q", got)
	}

	r.now = fixedClock(now.Add(failureWindow + time.Second))
	if got := r.ResolveLocation(context.Background(), "81.2.69.142"); got != "Bristol, England, United Kingdom" {
		t.Fatalf("expected lookup after decay, got %q", got)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", hits)
	}
}
