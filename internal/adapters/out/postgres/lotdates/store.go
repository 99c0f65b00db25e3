// Package lotdates bulk-loads lot manufacturing dates and back-fills lots
// whose manufacturing date is still unknown.
package lotdates

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// LotManufacturingDateDTO is one lot_manufacturing_dates row. A lot may carry
// several candidate dates; the earliest one is used for back-fill.
type LotManufacturingDateDTO struct {
	LotNumber        string    `gorm:"type:varchar(64);primaryKey"`
	ManufacturedDate time.Time `gorm:"type:date;primaryKey"`
}

func (LotManufacturingDateDTO) TableName() string {
	return "lot_manufacturing_dates"
}

// Row is one lot number with its manufacturing date.
type Row struct {
	LotNumber        string
	ManufacturedDate time.Time
}

// Result counts what one import changed.
type Result struct {
	Loaded     int64
	Inserted   int64
	Backfilled int64
}

// Store talks to PostgreSQL through lib/pq, which provides COPY FROM STDIN.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Import copies rows into a session-local staging table, merges them into
// lot_manufacturing_dates ignoring pairs already stored, and sets
// inventory_lots.manufactured_date where it is NULL. Everything happens in one
// transaction.
func (s *Store) Import(ctx context.Context, rows []Row) (Result, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx,
		`CREATE TEMP TABLE lot_dates_staging (lot_number varchar(64), manufactured_date date) ON COMMIT DROP`,
	); err != nil {
		return Result{}, fmt.Errorf("create staging table: %w", err)
	}

	loaded, err := copyRows(ctx, tx, rows)
	if err != nil {
		return Result{}, err
	}

	inserted, err := exec(ctx, tx, `
		INSERT INTO lot_manufacturing_dates (lot_number, manufactured_date)
		SELECT DISTINCT lot_number, manufactured_date FROM lot_dates_staging
		ON CONFLICT (lot_number, manufactured_date) DO NOTHING`)
	if err != nil {
		return Result{}, fmt.Errorf("merge lot dates: %w", err)
	}

	backfilled, err := exec(ctx, tx, `
		UPDATE inventory_lots l
		SET manufactured_date = m.manufactured_date
		FROM (
			SELECT lot_number, MIN(manufactured_date) AS manufactured_date
			FROM lot_manufacturing_dates
			GROUP BY lot_number
		) m
		WHERE l.lot_number = m.lot_number AND l.manufactured_date IS NULL`)
	if err != nil {
		return Result{}, fmt.Errorf("back-fill lots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return Result{}, err
	}

	return Result{Loaded: loaded, Inserted: inserted, Backfilled: backfilled}, nil
}

func copyRows(ctx context.Context, tx *sql.Tx, rows []Row) (int64, error) {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("lot_dates_staging", "lot_number", "manufactured_date"))
	if err != nil {
		return 0, fmt.Errorf("prepare copy: %w", err)
	}

	for _, r := range rows {
		if _, err = stmt.ExecContext(ctx, r.LotNumber, r.ManufacturedDate.Format(time.DateOnly)); err != nil {
			_ = stmt.Close()
			return 0, fmt.Errorf("copy %s: %w", r.LotNumber, err)
		}
	}

	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, fmt.Errorf("flush copy: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return 0, err
	}

	return int64(len(rows)), nil
}

func exec(ctx context.Context, tx *sql.Tx, query string) (int64, error) {
	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
