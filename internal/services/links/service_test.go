package links_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reconx/internal/services/links"
)

const page = `<!doctype html>
<html><body>
<a href="/first">one</a>
<p><a href="https://example.com/second">two</a></p>
<a>no href</a>
<a href="">empty</a>
<div><a href="#frag">three</a></div>
</body></html>`

func TestLinks_DocumentOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := links.New(srv.Client(), "reconx-test")
	got, err := s.Links(context.Background(), srv.URL, 0)
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	want := []string{"/first", "https://example.com/second", "#frag"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLinks_Capped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := links.New(srv.Client(), "")
	got, err := s.Links(context.Background(), srv.URL, 2)
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d links, want cap of 2", len(got))
	}
}

func TestLinks_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := links.New(srv.Client(), "")
	if _, err := s.Links(context.Background(), srv.URL, 0); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
