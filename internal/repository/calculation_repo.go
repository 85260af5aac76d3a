package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"carboncalc/internal/models"

	"github.com/google/uuid"
)

type CalculationSQLite struct {
	db *sql.DB
}

func NewCalculationSQLite(db *sql.DB) *CalculationSQLite { return &CalculationSQLite{db: db} }

// Ensure implementation of CalculationRepo at compile time.
var _ CalculationRepo = (*CalculationSQLite)(nil)

const sqliteTimestampLayout = "2006-01-02 15:04:05"

const selectCalculationsSQL = `SELECT id, created_at, input, result FROM calculations`

// Append inserts a new record. If ID or CreatedAt are empty, they're set.
func (r *CalculationSQLite) Append(ctx context.Context, rec models.CalculationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	} else {
		rec.CreatedAt = rec.CreatedAt.UTC()
	}

	inputJSON, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshal calculation input: %w", err)
	}
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal calculation result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO calculations (id, created_at, total, transport_t, energy_t, lifestyle_t, input, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.CreatedAt.Format(sqliteTimestampLayout),
		rec.Result.Total,
		rec.Result.Breakdown.Transport,
		rec.Result.Breakdown.Energy,
		rec.Result.Breakdown.Lifestyle,
		string(inputJSON),
		string(resultJSON),
	)
	return err
}

// List returns records within [from, to] (inclusive; zero bounds are open),
// ordered by creation time ascending.
func (r *CalculationSQLite) List(ctx context.Context, from, to time.Time) ([]models.CalculationRecord, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC())
	}

	q := selectCalculationsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.CalculationRecord, 0, 16)
	for rows.Next() {
		rec, err := scanCalculation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ErrNoCalculations is returned by Latest when nothing has been stored yet.
var ErrNoCalculations = errors.New("no calculations stored")

// Latest returns the most recently stored record.
func (r *CalculationSQLite) Latest(ctx context.Context) (models.CalculationRecord, error) {
	row := r.db.QueryRowContext(ctx, selectCalculationsSQL+" ORDER BY created_at DESC LIMIT 1")
	rec, err := scanCalculation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CalculationRecord{}, ErrNoCalculations
		}
		return models.CalculationRecord{}, err
	}
	return rec, nil
}

// scanCalculation reads one row via the provided Scan func and unmarshals the
// stored input/result snapshots.
func scanCalculation(scan func(...any) error) (models.CalculationRecord, error) {
	var (
		rec        models.CalculationRecord
		inputJSON  string
		resultJSON string
	)
	if err := scan(&rec.ID, &rec.CreatedAt, &inputJSON, &resultJSON); err != nil {
		return models.CalculationRecord{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return models.CalculationRecord{}, fmt.Errorf("unmarshal calculation input %q: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return models.CalculationRecord{}, fmt.Errorf("unmarshal calculation result %q: %w", rec.ID, err)
	}
	return rec, nil
}
