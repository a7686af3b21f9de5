package repos

import (
	"context"
	"strconv"
	"strings"
)

// fakeStore is an in-memory sheets.Store. Tables are keyed by sheet name;
// row references in A1 notation ("Games!A3:C3") address 1-based rows.
type fakeStore struct {
	tables map[string][][]string
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][][]string{}}
}

func (fs *fakeStore) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	if fs.err != nil {
		return nil, fs.err
	}
	sheet, _ := splitRange(rng)
	rows := fs.tables[sheet]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (fs *fakeStore) AppendRow(ctx context.Context, rng string, cells []string) error {
	if fs.err != nil {
		return fs.err
	}
	sheet, _ := splitRange(rng)
	fs.tables[sheet] = append(fs.tables[sheet], append([]string(nil), cells...))
	return nil
}

func (fs *fakeStore) UpdateRow(ctx context.Context, rng string, cells []string) error {
	if fs.err != nil {
		return fs.err
	}
	sheet, ref := splitRange(rng)
	row := rowOf(ref)
	for len(fs.tables[sheet]) < row {
		fs.tables[sheet] = append(fs.tables[sheet], nil)
	}
	fs.tables[sheet][row-1] = append([]string(nil), cells...)
	return nil
}

func (fs *fakeStore) ClearRow(ctx context.Context, rng string) error {
	if fs.err != nil {
		return fs.err
	}
	sheet, ref := splitRange(rng)
	row := rowOf(ref)
	if row <= len(fs.tables[sheet]) {
		blank := make([]string, len(fs.tables[sheet][row-1]))
		fs.tables[sheet][row-1] = blank
	}
	return nil
}

func splitRange(rng string) (sheet, ref string) {
	parts := strings.SplitN(rng, "!", 2)
	if len(parts) != 2 {
		return rng, ""
	}
	return parts[0], parts[1]
}

// rowOf extracts the row number from a single-row reference like "A3:C3";
// a whole-column reference like "A:C" yields 0.
func rowOf(ref string) int {
	start := strings.SplitN(ref, ":", 2)[0]
	digits := strings.TrimLeft(start, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if digits == "" {
		return 0
	}
	n, _ := strconv.Atoi(digits)
	return n
}
