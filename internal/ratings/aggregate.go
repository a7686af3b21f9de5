package ratings

import (
	"math"
	"sort"
	"strconv"

	"github.com/funopi/funopi-backend/internal/types"
)

// Pure aggregation over raw rating events. Nothing here touches storage or
// mutates its inputs; every answer is recomputed from the full event set.

// HasVisitorRated reports whether any event carries exactly this visitor id.
// An empty id never matches: anonymous rows cannot claim a vote.
func HasVisitorRated(events []types.RatingEvent, visitorID string) bool {
	if visitorID == "" {
		return false
	}
	for _, e := range events {
		if e.VisitorID == visitorID {
			return true
		}
	}
	return false
}

// StatsFor computes count and mean over the events whose score parses as a
// number. Non-numeric scores are excluded from both numerator and
// denominator. Average is nil when nothing counted.
func StatsFor(events []types.RatingEvent) types.RatingStats {
	var sum float64
	var count int
	for _, e := range events {
		score, ok := parseScore(e.Score)
		if !ok {
			continue
		}
		sum += score
		count++
	}
	if count == 0 {
		return types.RatingStats{Average: nil, Count: 0}
	}
	avg := round2(sum / float64(count))
	return types.RatingStats{Average: &avg, Count: count}
}

// Summarize groups events by exact site title and computes per-site count,
// average, and the latest timestamp. Rows with an empty site or a
// non-numeric score are skipped entirely. Output order is first-seen site
// order, so identical input always yields identical output.
func Summarize(events []types.RatingEvent) []types.SiteRatingSummary {
	type acc struct {
		sum   float64
		count int
		last  string
	}
	bySite := map[string]*acc{}
	order := make([]string, 0)
	for _, e := range events {
		score, ok := parseScore(e.Score)
		if e.Site == "" || !ok {
			continue
		}
		a := bySite[e.Site]
		if a == nil {
			a = &acc{}
			bySite[e.Site] = a
			order = append(order, e.Site)
		}
		a.sum += score
		a.count++
		// Timestamps are fixed-width UTC strings, so lexicographic max is
		// the latest event.
		if e.ObservedAt != "" && e.ObservedAt > a.last {
			a.last = e.ObservedAt
		}
	}

	out := make([]types.SiteRatingSummary, 0, len(order))
	for _, site := range order {
		a := bySite[site]
		avg := round2(a.sum / float64(a.count))
		s := types.SiteRatingSummary{Title: site, Average: &avg, Count: a.count}
		if a.last != "" {
			last := a.last
			s.LastRatingAt = &last
		}
		out = append(out, s)
	}
	return out
}

// Rank orders summaries for the leaderboard: average descending (nil counts
// as 0 for comparison only), then count descending, then last rating time
// descending (missing sorts last). The three-level tie-break is end-user
// visible as rank numbers, so it must stay deterministic.
func Rank(summaries []types.SiteRatingSummary) []types.SiteRatingSummary {
	ranked := make([]types.SiteRatingSummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if avgOrZero(a) != avgOrZero(b) {
			return avgOrZero(a) > avgOrZero(b)
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return lastOrEmpty(a) > lastOrEmpty(b)
	})
	return ranked
}

// TopN is a prefix slice of an already-ranked sequence.
func TopN(summaries []types.SiteRatingSummary, n int) []types.SiteRatingSummary {
	if n < 0 {
		n = 0
	}
	if n > len(summaries) {
		n = len(summaries)
	}
	return summaries[:n]
}

func avgOrZero(s types.SiteRatingSummary) float64 {
	if s.Average == nil {
		return 0
	}
	return *s.Average
}

func lastOrEmpty(s types.SiteRatingSummary) string {
	if s.LastRatingAt == nil {
		return ""
	}
	return *s.LastRatingAt
}

func parseScore(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
