package domain_test

import (
	"errors"
	"testing"

	"reconx/internal/domain"
)

func TestParseTarget_Normalises(t *testing.T) {
	cases := map[string]string{
		"Example.COM":                  "example.com",
		"https://example.com/path?q=1": "example.com",
		"http://sub.example.com":       "sub.example.com",
		"example.com.":                 "example.com",
		"  example.com  ":              "example.com",
		"_dmarc.example.com":           "_dmarc.example.com",
	}
	for in, want := range cases {
		got, err := domain.ParseTarget(in)
		if err != nil {
			t.Fatalf("ParseTarget(%q): %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("ParseTarget(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTarget_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "exa mple.com", "a..b", "bad;rm", "héllo.com"} {
		if _, err := domain.ParseTarget(in); err == nil {
			t.Fatalf("ParseTarget(%q) succeeded, want error", in)
		}
	}
}

func TestReport_AddError(t *testing.T) {
	r := domain.NewReport("example.com")
	r.AddError("dns", nil)
	if len(r.Errors) != 0 {
		t.Fatalf("nil error recorded: %v", r.Errors)
	}
	r.AddError("dns", errors.New("boom"))
	if len(r.Errors) != 1 || r.Errors[0] != "dns: boom" {
		t.Fatalf("errors: %v", r.Errors)
	}
}

func TestURLCheck_Alive(t *testing.T) {
	if (domain.URLCheck{URL: "x", Error: "refused"}).Alive() {
		t.Fatal("error-only check must not be alive")
	}
	if !(domain.URLCheck{URL: "x", Status: 404}).Alive() {
		t.Fatal("a 404 response still means the server answered")
	}
}
