package services

import (
	"context"
	"errors"
	"testing"

	"github.com/funopi/funopi-backend/internal/catalog"
	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/types"
)

func TestStatsBuild_Counts(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: []types.Experience{
		{Position: 2, Title: "Chess", URL: "https://chess.example"},
		{Position: 3, Title: "Go", URL: "https://go.example"},
	}}
	ratingRepo := &fakeRatingRepo{events: []types.RatingEvent{
		{Site: "Chess", Score: "5", VisitorID: "v1", ObservedAt: "2024-01-01T00:00:00.000Z"},
		{Site: "Chess", Score: "4", VisitorID: "v2", ObservedAt: "2024-01-02T00:00:00.000Z"},
		{Site: "Go", Score: "3", VisitorID: "v1", ObservedAt: "2024-01-03T00:00:00.000Z"},
		{Site: "Go", Score: "3", VisitorID: "", ObservedAt: "2024-01-04T00:00:00.000Z"},
	}}
	svc := NewStatsService(testLogger(t), catalogRepo, ratingRepo)

	stats := svc.Build(context.Background())
	if stats.TotalGames != 2 || stats.SheetGamesCount != 2 {
		t.Fatalf("unexpected game counts: %+v", stats)
	}
	if stats.RatingsCount != 4 {
		t.Fatalf("expected 4 ratings got %d", stats.RatingsCount)
	}
	if stats.UniqueVisitors != 2 {
		t.Fatalf("expected 2 unique visitors (blank excluded), got %d", stats.UniqueVisitors)
	}
	if len(stats.TopRated) != 2 || stats.TopRated[0].Title != "Chess" {
		t.Fatalf("unexpected leaderboard: %+v", stats.TopRated)
	}
	if stats.LastUpdated == "" {
		t.Fatalf("lastUpdated must be set")
	}
}

func TestStatsBuild_FallbackCountWhenCatalogEmpty(t *testing.T) {
	svc := NewStatsService(testLogger(t), &fakeCatalogRepo{}, &fakeRatingRepo{})

	stats := svc.Build(context.Background())
	want := len(catalog.Fallback())
	if stats.TotalGames != want {
		t.Fatalf("expected totalGames=%d from fallback, got %d", want, stats.TotalGames)
	}
	if stats.SheetGamesCount != 0 {
		t.Fatalf("expected sheetGamesCount=0 got %d", stats.SheetGamesCount)
	}
}

func TestStatsBuild_DegradesOnScanFailure(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{listErr: apierr.StoreRequestFailed(errors.New("boom"))}
	ratingRepo := &fakeRatingRepo{readErr: apierr.StoreRequestFailed(errors.New("boom"))}
	svc := NewStatsService(testLogger(t), catalogRepo, ratingRepo)

	stats := svc.Build(context.Background())
	if stats.RatingsCount != 0 || stats.UniqueVisitors != 0 {
		t.Fatalf("expected empty rating stats on failure, got %+v", stats)
	}
	if stats.TotalGames != len(catalog.Fallback()) {
		t.Fatalf("expected fallback game count on failure, got %d", stats.TotalGames)
	}
	if len(stats.TopRated) != 0 {
		t.Fatalf("expected empty leaderboard on failure, got %+v", stats.TopRated)
	}
}

func TestStatsBuild_TopRatedCapAtFive(t *testing.T) {
	ratingRepo := &fakeRatingRepo{}
	for i := 0; i < 7; i++ {
		ratingRepo.events = append(ratingRepo.events, types.RatingEvent{
			Site:      string(rune('A' + i)),
			Score:     "5",
			VisitorID: "v",
		})
	}
	svc := NewStatsService(testLogger(t), &fakeCatalogRepo{}, ratingRepo)

	stats := svc.Build(context.Background())
	if len(stats.TopRated) != 5 {
		t.Fatalf("leaderboard must cap at 5, got %d", len(stats.TopRated))
	}
}
