package exchange

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"agratem/internal/pricing"
)

// csvHeader is the fixed ten-column order of the bulk text format. This is
// the only bit-exact external contract of the engine.
var csvHeader = []string{
	"size", "level", "customerType",
	"oneMonth", "twoMonths", "threeMonths", "sixMonths", "oneYear", "oneDay",
	"id",
}

// Store is the backend table as seen by the bulk exchange: replace-only
// writes, whole-table reads.
type Store interface {
	ReplaceAllPriceRows(ctx context.Context, rows []pricing.PriceRow) (int, error)
}

// RowSource yields the current table for export. Reads degrade to cached
// or default data rather than failing.
type RowSource interface {
	Rows(ctx context.Context) []pricing.PriceRow
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

// RowError is one rejected upload line.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResult reports a bulk upload outcome. Rejected lines never abort
// the rest of the upload; they are collected in Skipped instead.
type ImportResult struct {
	Success  bool       `json:"success"`
	Imported int        `json:"imported"`
	Errors   []string   `json:"errors,omitempty"`
	Skipped  []RowError `json:"skipped,omitempty"`
}

// Exchanger handles the delimited-text bulk upload and the matching
// table serialization.
type Exchanger struct {
	store  Store
	source RowSource
	cache  Invalidator
	logger *zap.Logger
}

func New(store Store, source RowSource, cache Invalidator, logger *zap.Logger) *Exchanger {
	return &Exchanger{
		store:  store,
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Import parses newline-delimited, comma-separated text and replaces the
// whole backend table with the accepted rows. The first line names the
// columns; cells are plain comma splits with no quoting support. Rows
// missing size, level or customerType are skipped, as are duplicates of
// an already accepted (size, level, customerType) triple. A successful
// import invalidates the table cache; a failed replace leaves it alone.
func (e *Exchanger) Import(ctx context.Context, text string) ImportResult {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return ImportResult{Errors: []string{"empty upload: missing header line"}}
	}

	headers := splitLine(lines[0])

	var (
		rows    []pricing.PriceRow
		skipped []RowError
		seen    = map[string]bool{}
	)

	for i, line := range lines[1:] {
		lineNo := i + 2 // 1-based, counting the header
		if strings.TrimSpace(line) == "" {
			continue
		}

		row := parseRow(headers, splitLine(line))
		if row.Size == "" || row.Level == "" || row.CustomerType == "" {
			skipped = append(skipped, RowError{
				Line:   lineNo,
				Reason: "missing size, level or customerType",
			})
			continue
		}

		key := row.Size + "|" + row.Level + "|" + row.CustomerType
		if seen[key] {
			skipped = append(skipped, RowError{
				Line:   lineNo,
				Reason: fmt.Sprintf("duplicate of (%s, %s, %s), first occurrence kept", row.Size, row.Level, row.CustomerType),
			})
			continue
		}
		seen[key] = true

		rows = append(rows, row)
	}

	inserted, err := e.store.ReplaceAllPriceRows(ctx, rows)
	if err != nil {
		e.logger.Error("bulk price import failed", zap.Error(err))
		return ImportResult{
			Errors:  []string{fmt.Sprintf("replace price table: %v", err)},
			Skipped: skipped,
		}
	}

	e.cache.Invalidate(ctx)
	e.logger.Info("price table replaced from bulk upload",
		zap.Int("imported", inserted),
		zap.Int("skipped", len(skipped)))

	return ImportResult{
		Success:  true,
		Imported: inserted,
		Skipped:  skipped,
	}
}

// Export serializes the current table in the fixed header order. Missing
// price fields render as 0, a missing id as the empty string.
func (e *Exchanger) Export(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteString("\n")

	for _, row := range e.source.Rows(ctx) {
		cells := []string{row.Size, row.Level, row.CustomerType}
		for _, key := range pricing.DurationKeys {
			cells = append(cells, formatPrice(row.Prices[key]))
		}
		if row.ID != nil {
			cells = append(cells, strconv.FormatInt(*row.ID, 10))
		} else {
			cells = append(cells, "")
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	return b.String()
}

func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseRow zips cells with headers positionally. The id column becomes the
// row id when it parses as an integer; the six duration columns coerce to
// integers with invalid or absent values becoming 0; everything else is a
// trimmed string.
func parseRow(headers, cells []string) pricing.PriceRow {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			fields[h] = cells[i]
		}
	}

	row := pricing.PriceRow{
		Size:         fields["size"],
		Level:        fields["level"],
		CustomerType: fields["customerType"],
		Prices:       make(map[string]float64, len(pricing.DurationKeys)),
	}

	for _, key := range pricing.DurationKeys {
		n, err := strconv.Atoi(fields[key])
		if err != nil {
			n = 0
		}
		row.Prices[key] = float64(n)
	}

	if id, err := strconv.ParseInt(fields["id"], 10, 64); err == nil {
		row.ID = &id
	}

	return row
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
