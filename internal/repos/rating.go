package repos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/platform/sheets"
	"github.com/funopi/funopi-backend/internal/types"
)

// Timestamps must stay fixed-width UTC so that lexicographic comparison
// equals chronological comparison; summarization depends on it.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// RatingRepo owns the rating table and is its only writer. Events are
// append-only; nothing ever updates or deletes an individual rating row.
type RatingRepo interface {
	AppendEvent(ctx context.Context, site string, score int, visitorID, userAgent string) error
	AllEvents(ctx context.Context) ([]types.RatingEvent, error)
	EventsForSite(ctx context.Context, site string) ([]types.RatingEvent, error)
}

type ratingRepo struct {
	store sheets.Store
	sheet string
	log   *logger.Logger
	now   func() time.Time
}

func NewRatingRepo(store sheets.Store, sheet string, baseLog *logger.Logger) RatingRepo {
	return &ratingRepo{
		store: store,
		sheet: sheet,
		log:   baseLog.With("repo", "RatingRepo"),
		now:   time.Now,
	}
}

func (rr *ratingRepo) AppendEvent(ctx context.Context, site string, score int, visitorID, userAgent string) error {
	// Site and visitor id are the join keys aggregation depends on; a row
	// missing either would be unattributable forever.
	if site == "" {
		return apierr.Validation(errors.New("site is required"))
	}
	if visitorID == "" {
		return apierr.Validation(errors.New("visitor id is required"))
	}
	stamp := rr.now().UTC().Format(timestampLayout)
	return rr.store.AppendRow(ctx, rr.tableRange(),
		[]string{site, strconv.Itoa(score), visitorID, userAgent, stamp})
}

func (rr *ratingRepo) AllEvents(ctx context.Context) ([]types.RatingEvent, error) {
	rows, err := rr.store.ReadRange(ctx, rr.tableRange())
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	events := make([]types.RatingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventFromRow(row))
	}
	return events, nil
}

func (rr *ratingRepo) EventsForSite(ctx context.Context, site string) ([]types.RatingEvent, error) {
	events, err := rr.AllEvents(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]types.RatingEvent, 0, len(events))
	for _, e := range events {
		// Exact, case-sensitive match: the site title is the join key as
		// written.
		if e.Site == site {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (rr *ratingRepo) tableRange() string {
	return fmt.Sprintf("%s!A:E", rr.sheet)
}

func eventFromRow(row []string) types.RatingEvent {
	e := types.RatingEvent{}
	if len(row) > 0 {
		e.Site = row[0]
	}
	if len(row) > 1 {
		e.Score = row[1]
	}
	if len(row) > 2 {
		e.VisitorID = row[2]
	}
	if len(row) > 3 {
		e.UserAgent = row[3]
	}
	if len(row) > 4 {
		e.ObservedAt = row[4]
	}
	return e
}
