package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/types"
)

func TestDetails_MasksAndTruncates(t *testing.T) {
	longUA := strings.Repeat("x", 100)
	repo := &fakeRatingRepo{events: []types.RatingEvent{
		{Site: "Chess", Score: "5", VisitorID: "visitor-12345", UserAgent: longUA, ObservedAt: "2024-01-01T00:00:00.000Z"},
		{Site: "Chess", Score: "4", VisitorID: "ab", ObservedAt: "2024-01-02T00:00:00.000Z"},
		{Site: "Chess", Score: "3", VisitorID: "", ObservedAt: "2024-01-03T00:00:00.000Z"},
	}}
	svc := NewAdminRatingsService(testLogger(t), repo)

	details, err := svc.Details(context.Background(), "Chess")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 rows got %d", len(details))
	}
	// Most recent first.
	if details[0].Timestamp != "2024-01-03T00:00:00.000Z" {
		t.Fatalf("expected newest row first, got %q", details[0].Timestamp)
	}
	if details[0].VisitorID != "—" {
		t.Fatalf("missing visitor id must render as dash, got %q", details[0].VisitorID)
	}
	if details[1].VisitorID != "a***" {
		t.Fatalf("short visitor id mask wrong: %q", details[1].VisitorID)
	}
	if details[2].VisitorID != "visi…45" {
		t.Fatalf("long visitor id mask wrong: %q", details[2].VisitorID)
	}
	if got := details[2].UserAgent; len(got) <= 77 || !strings.HasSuffix(got, "…") {
		t.Fatalf("long user agent must be truncated with ellipsis, got %q", got)
	}
}

func TestDetails_CapsAtTwentyFiveMostRecent(t *testing.T) {
	repo := &fakeRatingRepo{}
	for i := 0; i < 30; i++ {
		repo.events = append(repo.events, types.RatingEvent{
			Site:       "Chess",
			Score:      "5",
			VisitorID:  "visitor",
			ObservedAt: fmt.Sprintf("2024-01-01T00:00:%02d.000Z", i),
		})
	}
	svc := NewAdminRatingsService(testLogger(t), repo)

	details, err := svc.Details(context.Background(), "Chess")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if len(details) != 25 {
		t.Fatalf("expected 25 rows got %d", len(details))
	}
	if details[0].Timestamp != "2024-01-01T00:00:29.000Z" {
		t.Fatalf("expected the newest event first, got %q", details[0].Timestamp)
	}
}

func TestDetails_PropagatesStoreFailure(t *testing.T) {
	repo := &fakeRatingRepo{readErr: apierr.StoreRequestFailed(errors.New("boom"))}
	svc := NewAdminRatingsService(testLogger(t), repo)

	if _, err := svc.Details(context.Background(), "Chess"); !apierr.IsCode(err, apierr.CodeStoreRequestFailed) {
		t.Fatalf("admin reads must surface store failures, got %v", err)
	}
}

func TestExportCSV_QuotesAndEscapes(t *testing.T) {
	repo := &fakeRatingRepo{events: []types.RatingEvent{
		{Site: `Say "Cheese"`, Score: "5", VisitorID: "v1", UserAgent: "agent, with commas", ObservedAt: "2024-01-01T00:00:00.000Z"},
	}}
	svc := NewAdminRatingsService(testLogger(t), repo)

	csv, filename, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(string(csv), "\n")
	if lines[0] != "Site,Rating,VisitorId,UserAgent,Timestamp" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	want := `"Say ""Cheese""","5","v1","agent, with commas","2024-01-01T00:00:00.000Z"`
	if lines[1] != want {
		t.Fatalf("unexpected row:\nwant %s\ngot  %s", want, lines[1])
	}
	if !strings.HasPrefix(filename, "ratings-export-") || !strings.HasSuffix(filename, ".csv") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSummaries_RankedForLeaderboard(t *testing.T) {
	repo := &fakeRatingRepo{events: []types.RatingEvent{
		{Site: "Go", Score: "3", VisitorID: "v1", ObservedAt: "2024-01-01T00:00:00.000Z"},
		{Site: "Chess", Score: "5", VisitorID: "v2", ObservedAt: "2024-01-02T00:00:00.000Z"},
	}}
	svc := NewAdminRatingsService(testLogger(t), repo)

	summaries, err := svc.Summaries(context.Background())
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 || summaries[0].Title != "Chess" {
		t.Fatalf("expected Chess ranked first, got %+v", summaries)
	}
}
