package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"agratem/internal/exchange"
	"agratem/internal/pricing"
)

type fakeStore struct {
	rows []pricing.PriceRow
}

func (f *fakeStore) ListPriceRows(ctx context.Context) ([]pricing.PriceRow, error) {
	return f.rows, nil
}

func (f *fakeStore) ReplaceAllPriceRows(ctx context.Context, rows []pricing.PriceRow) (int, error) {
	f.rows = rows
	return len(rows), nil
}

type nopCache struct{}

func (nopCache) Get(ctx context.Context) ([]pricing.PriceRow, bool) { return nil, false }
func (nopCache) Put(ctx context.Context, rows []pricing.PriceRow)   {}
func (nopCache) Invalidate(ctx context.Context)                     {}

func newTestServer() *Server {
	store := &fakeStore{rows: []pricing.PriceRow{
		{Size: "13x5", Level: "A", CustomerType: pricing.CustomerStandard,
			Prices: map[string]float64{
				pricing.DurationOneDay:   800,
				pricing.DurationOneMonth: 24000,
			}},
	}}
	logger := zap.NewNop()
	svc := pricing.NewService(store, nopCache{}, logger)
	exch := exchange.New(store, svc, nopCache{}, logger)
	return New(svc, exch, logger)
}

func TestCreateQuoteDaily(t *testing.T) {
	srv := newTestServer()

	body := `{
		"customer": {"name": "أحمد", "phone": "+218910000000", "customerType": "standard"},
		"assets": [{"id": 1, "name": "لوحة 1", "size": "13x5", "level": "A", "municipality": "طرابلس"}],
		"mode": "daily",
		"startDate": "2026-03-01",
		"endDate": "2026-03-07",
		"includeInstallation": true
	}`

	req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}

	if len(out.Quote.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(out.Quote.Items))
	}
	item := out.Quote.Items[0]
	if item.TotalDays != 7 {
		t.Errorf("TotalDays = %d, want 7", item.TotalDays)
	}
	if item.Subtotal != 5600 {
		t.Errorf("Subtotal = %v, want 5600", item.Subtotal)
	}
	if item.InstallationPrice != 1650 {
		t.Errorf("InstallationPrice = %v, want 1650", item.InstallationPrice)
	}
	if out.Quote.GrandTotal != 7250 {
		t.Errorf("GrandTotal = %v, want 7250", out.Quote.GrandTotal)
	}
	if out.Stats.TotalBillboards != 1 {
		t.Errorf("Stats.TotalBillboards = %d, want 1", out.Stats.TotalBillboards)
	}
}

func TestCreateQuoteDailyWithoutEndDate(t *testing.T) {
	srv := newTestServer()

	body := `{
		"customer": {"name": "أحمد", "customerType": "standard"},
		"assets": [{"id": 1, "size": "13x5", "level": "A", "municipality": "طرابلس"}],
		"mode": "daily",
		"startDate": "2026-03-01"
	}`

	req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400 for daily mode without end date", resp.StatusCode)
	}
}

func TestCreateQuotePackage(t *testing.T) {
	srv := newTestServer()

	body := `{
		"customer": {"name": "أحمد", "customerType": "standard"},
		"assets": [{"id": 1, "size": "13x5", "level": "A", "municipality": "طرابلس"}],
		"mode": "package",
		"startDate": "2026-03-01",
		"packageKey": "oneMonth"
	}`

	req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Quote.Subtotal != 24000 {
		t.Errorf("Subtotal = %v, want 24000", out.Quote.Subtotal)
	}
	if out.Quote.Items[0].DailyPrice != 800 {
		t.Errorf("DailyPrice = %v, want 800", out.Quote.Items[0].DailyPrice)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/prices/export", nil)
	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(data), "size,level,customerType,") {
		t.Errorf("unexpected export body: %q", string(data))
	}
}

func TestImportEndpoint(t *testing.T) {
	srv := newTestServer()

	upload := "size,level,customerType,oneMonth,twoMonths,threeMonths,sixMonths,oneYear,oneDay,id\n" +
		"8x3,B,marketer,11000,0,0,0,0,450,\n" +
		",B,marketer,11000,0,0,0,0,450,\n"

	req := httptest.NewRequest("POST", "/api/prices/import", strings.NewReader(upload))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := srv.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result exchange.ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Fatalf("import failed: %v", result.Errors)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if len(result.Skipped) != 1 {
		t.Errorf("Skipped = %d, want 1", len(result.Skipped))
	}
}
