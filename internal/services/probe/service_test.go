package probe_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"reconx/internal/services/probe"
)

func TestCheck_OrderAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/ok", srv.URL + "/missing", srv.URL + "/other"}
	s := probe.New(srv.Client(), "reconx-test", 2, nil)
	checks, err := s.Check(context.Background(), urls)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(checks) != 3 {
		t.Fatalf("got %d checks, want 3", len(checks))
	}
	wantStatus := []int{200, 404, 418}
	for i, c := range checks {
		if c.URL != urls[i] {
			t.Fatalf("checks[%d].URL = %q, want %q (order must match input)", i, c.URL, urls[i])
		}
		if c.Status != wantStatus[i] {
			t.Fatalf("checks[%d].Status = %d, want %d", i, c.Status, wantStatus[i])
		}
	}
}

func TestCheck_FollowsRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := probe.New(srv.Client(), "", 1, nil)
	checks, err := s.Check(context.Background(), []string{srv.URL + "/old"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if checks[0].FinalURL != srv.URL+"/new" {
		t.Fatalf("final url %q, want %q", checks[0].FinalURL, srv.URL+"/new")
	}
	if checks[0].Status != http.StatusOK {
		t.Fatalf("status %d, want 200", checks[0].Status)
	}
}

func TestCheck_ErrorEntryDoesNotAbortBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Closed port: connection refused.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	s := probe.New(nil, "", 4, nil)
	checks, err := s.Check(context.Background(), []string{deadURL, srv.URL})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if checks[0].Error == "" || checks[0].Alive() {
		t.Fatalf("want error entry for dead server, got %+v", checks[0])
	}
	if checks[1].Status != http.StatusOK {
		t.Fatalf("live server status %d, want 200", checks[1].Status)
	}
}

func TestCheck_ConcurrencyBounded(t *testing.T) {
	const limit = 3
	var inflight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inflight.Add(-1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var urls []string
	for i := 0; i < 20; i++ {
		urls = append(urls, fmt.Sprintf("%s/%d", srv.URL, i))
	}
	s := probe.New(srv.Client(), "", limit, nil)
	if _, err := s.Check(context.Background(), urls); err != nil {
		t.Fatalf("check: %v", err)
	}
	if p := peak.Load(); p > limit {
		t.Fatalf("peak in-flight %d exceeds limit %d", p, limit)
	}
}

func TestFilter(t *testing.T) {
	in := []string{"https://a/", "ftp://b/", "http://c/", "mailto:d@e"}
	got := probe.Filter(in)
	if len(got) != 2 || got[0] != "https://a/" || got[1] != "http://c/" {
		t.Fatalf("filter: got %v", got)
	}
}
