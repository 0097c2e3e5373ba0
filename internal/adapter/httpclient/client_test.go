package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slackhook/internal/domain/model"
)

func TestClientPost(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := New(time.Second, nil)
	body := []byte(`{"text":"hello"}`)
	result, err := client.Post(context.Background(), srv.URL, body, model.HeaderSet{"Content-Type": "application/json"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %s, want POST", gotMethod)
	}
	if gotType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotType)
	}
	if gotBody != string(body) {
		t.Fatalf("request body = %q, want %q", gotBody, body)
	}
	if result.StatusCode != http.StatusOK || string(result.Body) != "ok" {
		t.Fatalf("result = %d %q, want 200 ok", result.StatusCode, result.Body)
	}
}

func TestClientPostReturnsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel_not_found", http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := New(time.Second, nil).Post(context.Background(), srv.URL, []byte("{}"), nil)
	if err != nil {
		t.Fatalf("Post() error = %v, status codes must not be treated as transport errors", err)
	}
	if result.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", result.StatusCode)
	}
	if strings.TrimSpace(string(result.Body)) != "channel_not_found" {
		t.Fatalf("body = %q", result.Body)
	}
}

func TestClientPostTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	result, err := New(time.Second, nil).Post(context.Background(), url, []byte("{}"), nil)
	if err == nil {
		t.Fatalf("Post() result = %+v, want error", result)
	}
	if !strings.HasPrefix(err.Error(), "perform request:") {
		t.Fatalf("Post() error = %v, want perform request prefix", err)
	}
}

func TestClientPostTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(20*time.Millisecond, nil).Post(context.Background(), srv.URL, []byte("{}"), nil)
	if err == nil {
		t.Fatal("Post() error = nil, want timeout")
	}
	var netErr interface{ Timeout() bool }
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Fatalf("Post() error = %v, want a timeout error", err)
	}
}
