package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/funopi/funopi-backend/internal/config"
	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/platform/logger"
)

// Store is the tabular store contract the repositories build on. Ranges use
// A1 notation ("Games!A:C", "Games!A5:C5"). ReadRange returns every row in
// the range including the header row; callers skip it. No method retries —
// falling back on failure is the caller's call.
type Store interface {
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	AppendRow(ctx context.Context, rng string, cells []string) error
	UpdateRow(ctx context.Context, rng string, cells []string) error
	ClearRow(ctx context.Context, rng string) error
}

type googleStore struct {
	svc           *gsheets.Service
	spreadsheetID string
	log           *logger.Logger
}

// New builds a Sheets-backed Store from config. When the connection is not
// fully configured it returns a store whose every call fails as unavailable,
// so read paths can degrade instead of the process refusing to start.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (Store, error) {
	storeLog := log.With("component", "sheets")
	if !cfg.StoreConfigured() {
		storeLog.Warn("spreadsheet connection not configured; store calls will fail as unavailable")
		return &unavailableStore{}, nil
	}

	var opts []option.ClientOption
	creds := strings.TrimSpace(cfg.CredentialsJSON)
	if creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &googleStore{svc: svc, spreadsheetID: cfg.SpreadsheetID, log: storeLog}, nil
}

func (s *googleStore) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, apierr.StoreRequestFailed(fmt.Errorf("read %s: %w", rng, err))
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *googleStore) AppendRow(ctx context.Context, rng string, cells []string) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, valueRange(cells)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return apierr.StoreRequestFailed(fmt.Errorf("append %s: %w", rng, err))
	}
	return nil
}

func (s *googleStore) UpdateRow(ctx context.Context, rng string, cells []string) error {
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, valueRange(cells)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return apierr.StoreRequestFailed(fmt.Errorf("update %s: %w", rng, err))
	}
	return nil
}

func (s *googleStore) ClearRow(ctx context.Context, rng string) error {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return apierr.StoreRequestFailed(fmt.Errorf("clear %s: %w", rng, err))
	}
	return nil
}

func valueRange(cells []string) *gsheets.ValueRange {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return &gsheets.ValueRange{Values: [][]interface{}{row}}
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type unavailableStore struct{}

func (u *unavailableStore) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	return nil, errUnavailable(rng)
}
func (u *unavailableStore) AppendRow(ctx context.Context, rng string, cells []string) error {
	return errUnavailable(rng)
}
func (u *unavailableStore) UpdateRow(ctx context.Context, rng string, cells []string) error {
	return errUnavailable(rng)
}
func (u *unavailableStore) ClearRow(ctx context.Context, rng string) error {
	return errUnavailable(rng)
}

func errUnavailable(rng string) error {
	return apierr.StoreUnavailable(fmt.Errorf("spreadsheet connection not configured (range %s)", rng))
}
