package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/types"
)

func TestPreview_ReportsFramingHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &fakeRatingRepo{events: []types.RatingEvent{
		{Site: "Chess", Score: "4", VisitorID: "v1"},
	}}
	svc := NewPreviewService(testLogger(t), repo, 5*time.Second)

	result, err := svc.Preview(context.Background(), "Chess", srv.URL)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !result.Embed.OK {
		t.Fatalf("expected probe ok, got %+v", result.Embed)
	}
	if result.Embed.Status != "200 OK" {
		t.Fatalf("unexpected status %q", result.Embed.Status)
	}
	if result.Embed.XFrameOptions != "DENY" {
		t.Fatalf("expected X-Frame-Options to be surfaced, got %q", result.Embed.XFrameOptions)
	}
	if result.Embed.ContentSecurityPolicy != "frame-ancestors 'none'" {
		t.Fatalf("expected CSP to be surfaced, got %q", result.Embed.ContentSecurityPolicy)
	}
	if result.Stats.Count != 1 || result.Stats.Average == nil || *result.Stats.Average != 4 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
}

func TestPreview_ProbeFailureIsAResultNotAnError(t *testing.T) {
	svc := NewPreviewService(testLogger(t), &fakeRatingRepo{}, 500*time.Millisecond)

	result, err := svc.Preview(context.Background(), "Chess", "http://127.0.0.1:1/unreachable")
	if err != nil {
		t.Fatalf("a failed probe must not fail the preview, got %v", err)
	}
	if result.Embed.OK || result.Embed.Error == "" {
		t.Fatalf("expected probe error to be reported, got %+v", result.Embed)
	}
}

func TestPreview_StatsDegradeOnStoreFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &fakeRatingRepo{readErr: apierr.StoreUnavailable(errors.New("not configured"))}
	svc := NewPreviewService(testLogger(t), repo, 5*time.Second)

	result, err := svc.Preview(context.Background(), "Chess", srv.URL)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if result.Stats.Count != 0 || result.Stats.Average != nil {
		t.Fatalf("expected empty stats, got %+v", result.Stats)
	}
	if !result.Embed.OK {
		t.Fatalf("probe should still run, got %+v", result.Embed)
	}
}

func TestPreview_Validation(t *testing.T) {
	svc := NewPreviewService(testLogger(t), &fakeRatingRepo{}, time.Second)
	if _, err := svc.Preview(context.Background(), "", "https://x.example"); !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
	if _, err := svc.Preview(context.Background(), "Chess", ""); !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for missing url, got %v", err)
	}
}
