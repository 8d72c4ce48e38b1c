package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGoogle_Single(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("client") != "gtx" || q.Get("sl") != "bn" || q.Get("tl") != "en" || q.Get("dt") != "t" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("q") != "women's মেয়েদের জন্য টি-শার্ট" {
			t.Errorf("unexpected text: %q", q.Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["women's T-shirt ","x",null,null,10],["for girls","y",null,null,10]],null,"bn"]`))
	}))
	defer srv.Close()

	g := NewGoogleWithURL(srv.URL, time.Second, nil)
	out, err := g.Translate(context.Background(), "women's মেয়েদের জন্য টি-শার্ট", "bn-BD", "en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "women's T-shirt for girls" {
		t.Errorf("got %q", out)
	}
}

func TestGoogle_FallsBackToDict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/translate_a/single":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/translate_a/t":
			if r.URL.Query().Get("client") != "dict-chrome-ex" {
				t.Errorf("unexpected client: %s", r.URL.Query().Get("client"))
			}
			_, _ = w.Write([]byte(`[["necklace","hi"]]`))
		}
	}))
	defer srv.Close()

	g := NewGoogleWithURL(srv.URL, time.Second, nil)
	out, err := g.Translate(context.Background(), "हार", "hi", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "necklace" {
		t.Errorf("got %q", out)
	}
}

func TestGoogle_DictPlainString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/translate_a/single" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`["ring"]`))
	}))
	defer srv.Close()

	out, err := NewGoogleWithURL(srv.URL, time.Second, nil).Translate(context.Background(), "anillo", "es", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ring" {
		t.Errorf("got %q", out)
	}
}

func TestGoogle_AllEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewGoogleWithURL(srv.URL, time.Second, nil).Translate(context.Background(), "x", "es", "en"); err == nil {
		t.Fatal("expected error")
	}
}
