package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/ratings"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/types"
)

// RatingService is the public rating surface: read per-site stats and submit
// a vote. Reads degrade to empty stats when the store is down; submissions
// surface every failure because the caller must learn whether its vote took.
type RatingService interface {
	Details(ctx context.Context, site, visitorID string) (types.RatingDetails, error)
	Submit(ctx context.Context, site string, score int, visitorID, userAgent string) (types.RatingDetails, error)
}

type ratingService struct {
	log        *logger.Logger
	ratingRepo repos.RatingRepo
}

func NewRatingService(baseLog *logger.Logger, ratingRepo repos.RatingRepo) RatingService {
	return &ratingService{
		log:        baseLog.With("service", "RatingService"),
		ratingRepo: ratingRepo,
	}
}

func (rs *ratingService) Details(ctx context.Context, site, visitorID string) (types.RatingDetails, error) {
	if site == "" {
		return types.RatingDetails{}, apierr.Validation(errors.New("site is required"))
	}
	events, err := rs.ratingRepo.EventsForSite(ctx, site)
	if err != nil {
		if apierr.IsStoreFailure(err) {
			rs.log.Warn("rating read degraded to empty stats", "site", site, "error", err)
			return types.RatingDetails{}, nil
		}
		return types.RatingDetails{}, err
	}
	return types.RatingDetails{
		RatingStats:     ratings.StatsFor(events),
		VisitorHasRated: ratings.HasVisitorRated(events, visitorID),
	}, nil
}

func (rs *ratingService) Submit(ctx context.Context, site string, score int, visitorID, userAgent string) (types.RatingDetails, error) {
	if site == "" {
		return types.RatingDetails{}, apierr.Validation(errors.New("site is required"))
	}
	if visitorID == "" {
		return types.RatingDetails{}, apierr.Validation(errors.New("visitor id is required"))
	}
	if score < 1 || score > 5 {
		return types.RatingDetails{}, apierr.Validationf("score must be an integer between 1 and 5, got %d", score)
	}

	events, err := rs.ratingRepo.EventsForSite(ctx, site)
	if err != nil {
		return types.RatingDetails{}, err
	}
	// Best-effort gate, not a uniqueness constraint: two racing submissions
	// from the same visitor can both pass this check and both append.
	if ratings.HasVisitorRated(events, visitorID) {
		return types.RatingDetails{}, apierr.Conflict(errors.New("visitor has already rated this site"))
	}

	if err := rs.ratingRepo.AppendEvent(ctx, site, score, visitorID, userAgent); err != nil {
		return types.RatingDetails{}, err
	}

	fresh, err := rs.ratingRepo.EventsForSite(ctx, site)
	if err != nil {
		// The vote landed; report stats from what we already had plus the
		// new event rather than failing a successful write.
		rs.log.Warn("post-submit refresh failed; computing stats locally", "site", site, "error", err)
		fresh = append(events, types.RatingEvent{
			Site:      site,
			Score:     strconv.Itoa(score),
			VisitorID: visitorID,
		})
	}
	return types.RatingDetails{
		RatingStats:     ratings.StatsFor(fresh),
		VisitorHasRated: true,
	}, nil
}
