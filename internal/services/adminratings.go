package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/ratings"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/types"
)

const maxDetailRows = 25

// AdminRatingsService is the operator view over raw rating events: ranked
// per-site summaries, recent events for one site with visitor ids masked,
// and a full CSV export. Unlike the public surface, failures propagate — an
// operator must know when data could not be read.
type AdminRatingsService interface {
	Summaries(ctx context.Context) ([]types.SiteRatingSummary, error)
	Details(ctx context.Context, site string) ([]types.AdminRatingDetail, error)
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

type adminRatingsService struct {
	log        *logger.Logger
	ratingRepo repos.RatingRepo
	now        func() time.Time
}

func NewAdminRatingsService(baseLog *logger.Logger, ratingRepo repos.RatingRepo) AdminRatingsService {
	return &adminRatingsService{
		log:        baseLog.With("service", "AdminRatingsService"),
		ratingRepo: ratingRepo,
		now:        time.Now,
	}
}

func (ars *adminRatingsService) Summaries(ctx context.Context) ([]types.SiteRatingSummary, error) {
	events, err := ars.ratingRepo.AllEvents(ctx)
	if err != nil {
		return nil, err
	}
	return ratings.Rank(ratings.Summarize(events)), nil
}

func (ars *adminRatingsService) Details(ctx context.Context, site string) ([]types.AdminRatingDetail, error) {
	if site == "" {
		return nil, apierr.Validation(errors.New("site is required"))
	}
	events, err := ars.ratingRepo.EventsForSite(ctx, site)
	if err != nil {
		return nil, err
	}
	// Most recent first; timestamps are string-sortable by construction.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].ObservedAt > events[j].ObservedAt
	})
	if len(events) > maxDetailRows {
		events = events[:maxDetailRows]
	}
	details := make([]types.AdminRatingDetail, 0, len(events))
	for _, e := range events {
		score, _ := strconv.Atoi(e.Score)
		details = append(details, types.AdminRatingDetail{
			Rating:    score,
			VisitorID: maskIdentifier(e.VisitorID),
			UserAgent: snippet(e.UserAgent),
			Timestamp: e.ObservedAt,
		})
	}
	return details, nil
}

func (ars *adminRatingsService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	events, err := ars.ratingRepo.AllEvents(ctx)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	buf.WriteString("Site,Rating,VisitorId,UserAgent,Timestamp\n")
	for i, e := range events {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fields := []string{e.Site, e.Score, e.VisitorID, e.UserAgent, e.ObservedAt}
		for j, f := range fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(csvEscape(f))
		}
	}
	filename := fmt.Sprintf("ratings-export-%d.csv", ars.now().UnixMilli())
	return buf.Bytes(), filename, nil
}

// Every field is quoted so that commas, quotes, and newlines inside user
// agents survive; embedded quotes are doubled.
func csvEscape(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func maskIdentifier(id string) string {
	if id == "" {
		return "—"
	}
	if len(id) <= 4 {
		return id[:1] + "***"
	}
	return id[:4] + "…" + id[len(id)-2:]
}

func snippet(value string) string {
	if value == "" {
		return "—"
	}
	if len(value) > 80 {
		return value[:77] + "…"
	}
	return value
}
