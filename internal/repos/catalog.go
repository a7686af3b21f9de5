package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/funopi/funopi-backend/internal/catalog"
	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/platform/sheets"
	"github.com/funopi/funopi-backend/internal/types"
)

const (
	defaultTitle       = "Untitled Experience"
	defaultDescription = "A surprise distraction from the Funopi vault."
)

// CatalogRepo owns the catalog table and is its only writer. Positions are
// 1-based row numbers (data starts at row 2, below the header). UpdateAt and
// DeleteAt write blind: there is no existence check or version token, so
// concurrent edits to the same row are last-write-wins.
type CatalogRepo interface {
	List(ctx context.Context) ([]types.Experience, error)
	Append(ctx context.Context, title, url, description string) error
	UpdateAt(ctx context.Context, position int, title, url, description string) error
	DeleteAt(ctx context.Context, position int) error
	LoadWithFallback(ctx context.Context) types.CatalogPayload
}

type catalogRepo struct {
	store sheets.Store
	sheet string
	log   *logger.Logger
}

func NewCatalogRepo(store sheets.Store, sheet string, baseLog *logger.Logger) CatalogRepo {
	return &catalogRepo{store: store, sheet: sheet, log: baseLog.With("repo", "CatalogRepo")}
}

func (cr *catalogRepo) List(ctx context.Context) ([]types.Experience, error) {
	rows, err := cr.store.ReadRange(ctx, fmt.Sprintf("%s!A:C", cr.sheet))
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	items := make([]types.Experience, 0, len(rows))
	for i, row := range rows {
		exp := normalizeRow(row)
		if exp.URL == "" {
			// A cleared row stays in place so later positions keep their
			// numbers; it just disappears from the listing.
			continue
		}
		exp.Position = i + 2
		items = append(items, exp)
	}
	return items, nil
}

func (cr *catalogRepo) Append(ctx context.Context, title, url, description string) error {
	if err := validateEntry(title, url); err != nil {
		return err
	}
	return cr.store.AppendRow(ctx, fmt.Sprintf("%s!A:C", cr.sheet),
		[]string{strings.TrimSpace(title), strings.TrimSpace(url), description})
}

func (cr *catalogRepo) UpdateAt(ctx context.Context, position int, title, url, description string) error {
	if err := validateEntry(title, url); err != nil {
		return err
	}
	if err := validatePosition(position); err != nil {
		return err
	}
	return cr.store.UpdateRow(ctx, cr.rowRange(position),
		[]string{strings.TrimSpace(title), strings.TrimSpace(url), description})
}

func (cr *catalogRepo) DeleteAt(ctx context.Context, position int) error {
	if err := validatePosition(position); err != nil {
		return err
	}
	// Clears the row contents without shifting the rows below it.
	return cr.store.ClearRow(ctx, cr.rowRange(position))
}

// LoadWithFallback is the public read path. Store failures and an empty
// catalog both substitute the compiled-in fallback wholesale — the play
// experience must never hard-fail because the spreadsheet is down. This is
// the one place a store error is swallowed.
func (cr *catalogRepo) LoadWithFallback(ctx context.Context) types.CatalogPayload {
	items, err := cr.List(ctx)
	if err == nil && len(items) > 0 {
		for i := range items {
			items[i].Position = 0
		}
		return types.CatalogPayload{Items: items, Source: types.SourceStore}
	}
	if err != nil {
		cr.log.Warn("catalog read failed; serving fallback", "error", err)
	}
	return types.CatalogPayload{Items: catalog.Fallback(), Source: types.SourceFallback}
}

func (cr *catalogRepo) rowRange(position int) string {
	return fmt.Sprintf("%s!A%d:C%d", cr.sheet, position, position)
}

func normalizeRow(row []string) types.Experience {
	exp := types.Experience{}
	if len(row) > 0 {
		exp.Title = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		exp.URL = strings.TrimSpace(row[1])
	}
	if len(row) > 2 {
		exp.Description = strings.TrimSpace(row[2])
	}
	if exp.Title == "" {
		exp.Title = defaultTitle
	}
	if exp.Description == "" {
		exp.Description = defaultDescription
	}
	return exp
}

func validateEntry(title, url string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(url) == "" {
		return apierr.Validation(errors.New("title and url are required"))
	}
	return nil
}

func validatePosition(position int) error {
	if position < 2 {
		return apierr.Validationf("row %d is not addressable (data starts at row 2)", position)
	}
	return nil
}
