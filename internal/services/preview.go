package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/ratings"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/types"
)

// PreviewResult pairs a candidate entry's current rating stats with a live
// probe of whether its URL is likely to render inside a frame.
type PreviewResult struct {
	Stats types.RatingStats `json:"stats"`
	Embed types.EmbedProbe  `json:"embed"`
}

type PreviewService interface {
	Preview(ctx context.Context, title, url string) (PreviewResult, error)
}

type previewService struct {
	log        *logger.Logger
	ratingRepo repos.RatingRepo
	client     *http.Client
}

func NewPreviewService(baseLog *logger.Logger, ratingRepo repos.RatingRepo, probeTimeout time.Duration) PreviewService {
	return &previewService{
		log:        baseLog.With("service", "PreviewService"),
		ratingRepo: ratingRepo,
		client:     &http.Client{Timeout: probeTimeout},
	}
}

func (ps *previewService) Preview(ctx context.Context, title, url string) (PreviewResult, error) {
	if title == "" || url == "" {
		return PreviewResult{}, apierr.Validation(errors.New("title and url are required"))
	}

	// Stats are advisory here; a store outage should not block the probe.
	var stats types.RatingStats
	events, err := ps.ratingRepo.EventsForSite(ctx, title)
	if err != nil {
		ps.log.Warn("preview: rating lookup failed", "site", title, "error", err)
	} else {
		stats = ratings.StatsFor(events)
	}

	return PreviewResult{Stats: stats, Embed: ps.probe(ctx, url)}, nil
}

// probe issues a HEAD request (redirects followed) and reports the framing
// headers the admin needs to judge embeddability. A failed probe is a
// result, not an error.
func (ps *previewService) probe(ctx context.Context, url string) types.EmbedProbe {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return types.EmbedProbe{Error: err.Error()}
	}
	resp, err := ps.client.Do(req)
	if err != nil {
		return types.EmbedProbe{Error: err.Error()}
	}
	defer resp.Body.Close()
	return types.EmbedProbe{
		OK:                    resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status:                fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		XFrameOptions:         resp.Header.Get("X-Frame-Options"),
		ContentSecurityPolicy: resp.Header.Get("Content-Security-Policy"),
	}
}
