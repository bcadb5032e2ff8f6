package wayback_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"reconx/internal/domain"
	"reconx/internal/services/wayback"
)

const cdxBody = `[["original"],
["http://example.com/"],
["http://example.com/login"],
["http://example.com/"],
["https://example.com/admin"]]`

func TestURLs_ParsesAndDedupes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fl"); got != "original" {
			t.Errorf("fl=%q, want original", got)
		}
		if got := r.URL.Query().Get("url"); got != "example.com/*" {
			t.Errorf("url=%q, want example.com/*", got)
		}
		_, _ = w.Write([]byte(cdxBody))
	}))
	defer srv.Close()

	c := wayback.NewClient(srv.URL, srv.Client(), "reconx-test", nil)
	urls, err := c.URLs(context.Background(), "example.com", 100)
	if err != nil {
		t.Fatalf("URLs: %v", err)
	}
	want := []string{"http://example.com/", "http://example.com/login", "https://example.com/admin"}
	if len(urls) != len(want) {
		t.Fatalf("got %d urls, want %d: %v", len(urls), len(want), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestURLs_LimitCapsAfterDedupe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(cdxBody))
	}))
	defer srv.Close()

	c := wayback.NewClient(srv.URL, srv.Client(), "", nil)
	urls, err := c.URLs(context.Background(), "example.com", 2)
	if err != nil {
		t.Fatalf("URLs: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("got %d urls, want 2", len(urls))
	}
}

func TestURLs_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[["original"],["http://example.com/"]]`))
	}))
	defer srv.Close()

	c := wayback.NewClient(srv.URL, srv.Client(), "", nil)
	urls, err := c.URLs(context.Background(), "example.com", 10)
	if err != nil {
		t.Fatalf("URLs after retry: %v", err)
	}
	if len(urls) != 1 {
		t.Fatalf("got %v, want one url", urls)
	}
	if calls.Load() < 2 {
		t.Fatalf("server called %d times, want at least 2", calls.Load())
	}
}

func TestURLs_FatalOn404(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := wayback.NewClient(srv.URL, srv.Client(), "", nil)
	if _, err := c.URLs(context.Background(), "example.com", 10); err == nil {
		t.Fatal("expected error on 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("server called %d times, want 1 (no retry on 404)", calls.Load())
	}
}

func TestFromTool(t *testing.T) {
	res := domain.ToolResult{Stdout: "http://a/\n\n  http://b/path \nhttp://a/\n"}
	urls := wayback.FromTool(res)
	if len(urls) != 3 {
		t.Fatalf("got %v, want 3 lines", urls)
	}
	if urls[1] != "http://b/path" {
		t.Fatalf("urls[1] = %q, want trimmed http://b/path", urls[1])
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	got := wayback.Dedupe([]string{"c", "a", "c", "b", "a"}, 0)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
