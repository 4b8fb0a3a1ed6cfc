package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testDetector(t *testing.T, handler http.HandlerFunc) *Detector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Detector{Endpoint: srv.URL, Client: srv.Client()}
}

func TestDetect(t *testing.T) {
	d := testDetector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","city":"Mumbai"}`))
	})

	city, err := d.Detect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if city != "Mumbai" {
		t.Errorf("city = %q, want Mumbai", city)
	}
}

func TestDetectFailureStatus(t *testing.T) {
	d := testDetector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Error("expected error for fail status")
	}
}

func TestDetectEmptyCity(t *testing.T) {
	d := testDetector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","city":""}`))
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Error("expected error for empty city")
	}
}

func TestDetectHTTPError(t *testing.T) {
	d := testDetector(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Error("expected error for non-200 response")
	}
}
