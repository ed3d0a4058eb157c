package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(srv *httptest.Server, model string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		Model:   model,
		BaseURL: srv.URL,
	})
}

func TestClient_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/models/gemini-1.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("api key header not set, got %q", r.Header.Get("x-goog-api-key"))
		}
		if r.URL.Query().Get("key") != "" {
			t.Error("api key must not travel in the URL")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "find me a laptop" {
			t.Errorf("prompt not forwarded: %+v", req)
		}

		_ = json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "Here are "}, {Text: "some laptops."}}}},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv, "gemini-1.5-flash")
	got, err := c.GenerateContent(context.Background(), "find me a laptop")
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}
	if got != "Here are some laptops." {
		t.Errorf("parts must be concatenated, got %q", got)
	}
}

func TestClient_GenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "gemini-1.5-pro")
	_, err := c.GenerateContent(context.Background(), "q")
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "genai gemini-1.5-pro: quota exceeded (RESOURCE_EXHAUSTED)"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestClient_GenerateContent_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream broke"))
	}))
	defer srv.Close()

	c := newTestClient(srv, "gemini-pro-vision")
	_, err := c.GenerateContent(context.Background(), "q")
	if err == nil || !strings.Contains(err.Error(), "unexpected status 502") {
		t.Errorf("expected raw status error, got %v", err)
	}
}

func TestClient_GenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "gemini-1.5-flash")
	_, err := c.GenerateContent(context.Background(), "q")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Errorf("expected empty response error, got %v", err)
	}
}

func TestClient_GenerateContent_TransportErrorOmitsKey(t *testing.T) {
	// A refused connection yields a *url.Error quoting the full request URL,
	// and that message flows into logs and the gateway-failure response.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(Config{
		APIKey:  "super-secret-key",
		Model:   "gemini-1.5-flash",
		BaseURL: srv.URL,
	})
	_, err := c.GenerateContent(context.Background(), "q")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if strings.Contains(err.Error(), "super-secret-key") {
		t.Fatalf("api key leaked into error message: %v", err)
	}
}

func TestClient_GenerateContent_NoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": []}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "gemini-1.5-flash")
	_, err := c.GenerateContent(context.Background(), "q")
	if err == nil || !strings.Contains(err.Error(), "no text") {
		t.Errorf("expected no-text error, got %v", err)
	}
}
