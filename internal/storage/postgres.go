package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"agratem/internal/config"
	"agratem/internal/pricing"
)

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// priceRowRecord mirrors the price_rows table. Price columns are nullable:
// NULL means the duration is not configured for the row, which is not the
// same as a zero price.
type priceRowRecord struct {
	ID           int64    `db:"id"`
	Size         string   `db:"size"`
	Level        string   `db:"level"`
	CustomerType string   `db:"customer_type"`
	OneDay       *float64 `db:"one_day"`
	OneMonth     *float64 `db:"one_month"`
	TwoMonths    *float64 `db:"two_months"`
	ThreeMonths  *float64 `db:"three_months"`
	SixMonths    *float64 `db:"six_months"`
	OneYear      *float64 `db:"one_year"`
}

func NewPostgresStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		retryPolicy,
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}, nil
}

// ListPriceRows returns the whole price table ordered by id ascending.
func (s *PostgresStorage) ListPriceRows(ctx context.Context) ([]pricing.PriceRow, error) {
	const query = `
        SELECT id, size, level, customer_type,
               one_day, one_month, two_months, three_months, six_months, one_year
        FROM price_rows
        ORDER BY id ASC
    `

	var records []priceRowRecord
	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list price rows: %w", err)
	}

	rows := make([]pricing.PriceRow, len(records))
	for i, rec := range records {
		rows[i] = rec.toDomain()
	}
	return rows, nil
}

// ReplaceAllPriceRows swaps the whole table for the given rows in one
// transaction: delete everything, then bulk insert. Returns the number of
// rows inserted.
func (s *PostgresStorage) ReplaceAllPriceRows(ctx context.Context, rows []pricing.PriceRow) (int, error) {
	const operation = "storage.ReplaceAllPriceRows"

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", operation, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM price_rows`); err != nil {
		return 0, fmt.Errorf("%s: delete: %w", operation, err)
	}

	const insert = `
        INSERT INTO price_rows (
            size, level, customer_type,
            one_day, one_month, two_months, three_months, six_months, one_year
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, insert,
			row.Size,
			row.Level,
			row.CustomerType,
			priceOrNull(row, pricing.DurationOneDay),
			priceOrNull(row, pricing.DurationOneMonth),
			priceOrNull(row, pricing.DurationTwoMonths),
			priceOrNull(row, pricing.DurationThreeMonths),
			priceOrNull(row, pricing.DurationSixMonths),
			priceOrNull(row, pricing.DurationOneYear),
		)
		if err != nil {
			return 0, fmt.Errorf("%s: insert (%s, %s, %s): %w",
				operation, row.Size, row.Level, row.CustomerType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", operation, err)
	}

	return len(rows), nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the raw handle for the migration runner.
func (s *PostgresStorage) DB() *sqlx.DB {
	return s.db
}

func (rec priceRowRecord) toDomain() pricing.PriceRow {
	id := rec.ID
	row := pricing.PriceRow{
		ID:           &id,
		Size:         rec.Size,
		Level:        rec.Level,
		CustomerType: rec.CustomerType,
		Prices:       make(map[string]float64, 6),
	}

	set := func(key string, v *float64) {
		if v != nil {
			row.Prices[key] = *v
		}
	}
	set(pricing.DurationOneDay, rec.OneDay)
	set(pricing.DurationOneMonth, rec.OneMonth)
	set(pricing.DurationTwoMonths, rec.TwoMonths)
	set(pricing.DurationThreeMonths, rec.ThreeMonths)
	set(pricing.DurationSixMonths, rec.SixMonths)
	set(pricing.DurationOneYear, rec.OneYear)

	return row
}

func priceOrNull(row pricing.PriceRow, key string) *float64 {
	if v, ok := row.Prices[key]; ok {
		return &v
	}
	return nil
}
