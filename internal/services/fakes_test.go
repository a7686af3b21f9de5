package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/funopi/funopi-backend/internal/types"
)

type fakeRatingRepo struct {
	events    []types.RatingEvent
	readErr   error
	appendErr error
	appends   int
}

func (fr *fakeRatingRepo) AppendEvent(ctx context.Context, site string, score int, visitorID, userAgent string) error {
	if fr.appendErr != nil {
		return fr.appendErr
	}
	fr.appends++
	fr.events = append(fr.events, types.RatingEvent{
		Site:       site,
		Score:      strconv.Itoa(score),
		VisitorID:  visitorID,
		UserAgent:  userAgent,
		ObservedAt: fmt.Sprintf("2024-01-01T00:00:%02d.000Z", fr.appends),
	})
	return nil
}

func (fr *fakeRatingRepo) AllEvents(ctx context.Context) ([]types.RatingEvent, error) {
	if fr.readErr != nil {
		return nil, fr.readErr
	}
	return append([]types.RatingEvent(nil), fr.events...), nil
}

func (fr *fakeRatingRepo) EventsForSite(ctx context.Context, site string) ([]types.RatingEvent, error) {
	if fr.readErr != nil {
		return nil, fr.readErr
	}
	out := make([]types.RatingEvent, 0, len(fr.events))
	for _, e := range fr.events {
		if e.Site == site {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	items   []types.Experience
	listErr error
}

func (fc *fakeCatalogRepo) List(ctx context.Context) ([]types.Experience, error) {
	if fc.listErr != nil {
		return nil, fc.listErr
	}
	return append([]types.Experience(nil), fc.items...), nil
}

func (fc *fakeCatalogRepo) Append(ctx context.Context, title, url, description string) error {
	fc.items = append(fc.items, types.Experience{
		Position:    len(fc.items) + 2,
		Title:       title,
		URL:         url,
		Description: description,
	})
	return nil
}

func (fc *fakeCatalogRepo) UpdateAt(ctx context.Context, position int, title, url, description string) error {
	for i := range fc.items {
		if fc.items[i].Position == position {
			fc.items[i].Title = title
			fc.items[i].URL = url
			fc.items[i].Description = description
		}
	}
	return nil
}

func (fc *fakeCatalogRepo) DeleteAt(ctx context.Context, position int) error {
	out := fc.items[:0]
	for _, item := range fc.items {
		if item.Position != position {
			out = append(out, item)
		}
	}
	fc.items = out
	return nil
}

func (fc *fakeCatalogRepo) LoadWithFallback(ctx context.Context) types.CatalogPayload {
	items, err := fc.List(ctx)
	if err != nil || len(items) == 0 {
		return types.CatalogPayload{Items: nil, Source: types.SourceFallback}
	}
	return types.CatalogPayload{Items: items, Source: types.SourceStore}
}
