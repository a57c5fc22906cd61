package mlproxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFeedbackStatsPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feedback-stats" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"positive":12,"negative":3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	stats, err := c.FeedbackStats(context.Background())
	if err != nil {
		t.Fatalf("FeedbackStats: %v", err)
	}
	if string(stats) != `{"positive":12,"negative":3}` {
		t.Errorf("stats = %s", stats)
	}
}

func TestAnalyzeSentimentForwardsBody(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"compound":0.87}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.AnalyzeSentiment(context.Background(), []byte(`{"text":"masarap"}`))
	if err != nil {
		t.Fatalf("AnalyzeSentiment: %v", err)
	}
	if gotPath != "/api/analyze-sentiment" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody != `{"text":"masarap"}` {
		t.Errorf("forwarded body = %q", gotBody)
	}
	if string(result) != `{"compound":0.87}` {
		t.Errorf("result = %s", result)
	}
}

func TestUpstreamErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.FeedbackStats(context.Background()); err == nil {
		t.Fatal("expected error for upstream 502")
	}
}
