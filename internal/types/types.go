package types

// Experience is one playable entry in the catalog. Position is the 1-based
// row number in the backing table (header row excluded, so data starts at 2)
// and is the sole mutation key; fallback entries carry no position.
type Experience struct {
	Position    int    `json:"position,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CatalogPayload is the public games listing plus where it came from.
type CatalogPayload struct {
	Items  []Experience `json:"items"`
	Source string       `json:"source"` // "store" or "fallback"
}

const (
	SourceStore    = "store"
	SourceFallback = "fallback"
)

// RatingEvent is one raw rating row. Score stays a string because the table
// is hand-editable; aggregation decides what parses as a number. ObservedAt
// is a fixed-width UTC timestamp so string comparison orders events in time.
type RatingEvent struct {
	Site       string `json:"site"`
	Score      string `json:"score"`
	VisitorID  string `json:"visitorId"`
	UserAgent  string `json:"userAgent"`
	ObservedAt string `json:"observedAt"`
}

// RatingStats is the per-site aggregate returned to raters. Average is nil
// when no event has a numeric score.
type RatingStats struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// RatingDetails is RatingStats plus the duplicate-vote gate for one visitor.
type RatingDetails struct {
	RatingStats
	VisitorHasRated bool `json:"visitorHasRated"`
}

// SiteRatingSummary is the derived leaderboard row for one site. Never
// persisted; recomputed from the full event set on every request.
type SiteRatingSummary struct {
	Title        string   `json:"title"`
	Average      *float64 `json:"average"`
	Count        int      `json:"count"`
	LastRatingAt *string  `json:"lastRatingAt"`
}

// AdminStats is the dashboard snapshot.
type AdminStats struct {
	TotalGames         int                 `json:"totalGames"`
	SheetGamesCount    int                 `json:"sheetGamesCount"`
	FallbackGamesCount int                 `json:"fallbackGamesCount"`
	RatingsCount       int                 `json:"ratingsCount"`
	UniqueVisitors     int                 `json:"uniqueVisitors"`
	TopRated           []SiteRatingSummary `json:"topRated"`
	LastUpdated        string              `json:"lastUpdated"`
}

// AdminRatingDetail is one masked rating row for the admin console.
type AdminRatingDetail struct {
	Rating    int    `json:"rating"`
	VisitorID string `json:"visitorId"`
	UserAgent string `json:"userAgent"`
	Timestamp string `json:"timestamp,omitempty"`
}

// EmbedProbe is the result of a HEAD request against a candidate URL,
// reporting whether the page is likely to allow framing.
type EmbedProbe struct {
	OK                    bool   `json:"ok"`
	Status                string `json:"status,omitempty"`
	XFrameOptions         string `json:"xFrameOptions,omitempty"`
	ContentSecurityPolicy string `json:"contentSecurityPolicy,omitempty"`
	Error                 string `json:"error,omitempty"`
}
