package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/funopi/funopi-backend/internal/catalog"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/ratings"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/types"
)

// StatsService builds the admin dashboard snapshot. Every number is
// recomputed from a fresh full scan on each call; consumers poll.
type StatsService interface {
	Build(ctx context.Context) types.AdminStats
}

type statsService struct {
	log         *logger.Logger
	catalogRepo repos.CatalogRepo
	ratingRepo  repos.RatingRepo
	now         func() time.Time
}

func NewStatsService(baseLog *logger.Logger, catalogRepo repos.CatalogRepo, ratingRepo repos.RatingRepo) StatsService {
	return &statsService{
		log:         baseLog.With("service", "StatsService"),
		catalogRepo: catalogRepo,
		ratingRepo:  ratingRepo,
		now:         time.Now,
	}
}

func (ss *statsService) Build(ctx context.Context) types.AdminStats {
	var (
		sheetGames []types.Experience
		events     []types.RatingEvent
	)
	// Both scans degrade to empty: a half-broken dashboard beats none.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := ss.catalogRepo.List(gctx)
		if err != nil {
			ss.log.Warn("stats: catalog scan failed", "error", err)
			return nil
		}
		sheetGames = items
		return nil
	})
	g.Go(func() error {
		all, err := ss.ratingRepo.AllEvents(gctx)
		if err != nil {
			ss.log.Warn("stats: rating scan failed", "error", err)
			return nil
		}
		events = all
		return nil
	})
	_ = g.Wait()

	fallbackCount := len(catalog.Fallback())
	totalGames := len(sheetGames)
	if totalGames == 0 {
		totalGames = fallbackCount
	}

	seen := map[string]struct{}{}
	for _, e := range events {
		if e.VisitorID != "" {
			seen[e.VisitorID] = struct{}{}
		}
	}

	return types.AdminStats{
		TotalGames:         totalGames,
		SheetGamesCount:    len(sheetGames),
		FallbackGamesCount: fallbackCount,
		RatingsCount:       len(events),
		UniqueVisitors:     len(seen),
		TopRated:           ratings.TopN(ratings.Rank(ratings.Summarize(events)), 5),
		LastUpdated:        ss.now().UTC().Format(time.RFC3339),
	}
}
