// Package catalog provides the queryable fund catalog: the universe of
// candidate funds the optimizer selects from. The catalog is loaded once per
// process and treated as an immutable snapshot afterwards.
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Repository handles fund catalog database operations (funds table).
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new catalog repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "catalog").Logger(),
	}
}

// Init creates the funds table if it does not exist.
func (r *Repository) Init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS funds (
			ticker        TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			type          TEXT NOT NULL,
			asset_class   TEXT NOT NULL,
			expense_ratio REAL NOT NULL,
			aum           REAL NOT NULL,
			return_1yr    REAL,
			return_3yr    REAL,
			return_5yr    REAL,
			return_10yr   REAL,
			std_dev_3yr   REAL,
			active        INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create funds table: %w", err)
	}
	return nil
}

// Filter narrows a catalog query. Zero values mean "no constraint".
type Filter struct {
	AssetClass domain.AssetClass
	Type       domain.FundType
	MinAUM     float64
	Search     string // matched against ticker and name
	Limit      int
}

const fundColumns = `ticker, name, type, asset_class, expense_ratio, aum,
	return_1yr, return_3yr, return_5yr, return_10yr, std_dev_3yr, active`

// List returns funds matching the filter, ordered by AUM descending.
func (r *Repository) List(filter Filter) ([]domain.Fund, error) {
	query := "SELECT " + fundColumns + " FROM funds WHERE 1=1"
	var params []interface{}

	if filter.AssetClass != "" {
		query += " AND asset_class = ?"
		params = append(params, string(filter.AssetClass))
	}
	if filter.Type != "" {
		query += " AND type = ?"
		params = append(params, string(filter.Type))
	}
	if filter.MinAUM > 0 {
		query += " AND aum >= ?"
		params = append(params, filter.MinAUM)
	}
	if filter.Search != "" {
		query += " AND (ticker LIKE ? OR name LIKE ?)"
		pattern := "%" + filter.Search + "%"
		params = append(params, pattern, pattern)
	}

	query += " ORDER BY aum DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		params = append(params, filter.Limit)
	}

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query funds: %w", err)
	}
	defer rows.Close()

	var funds []domain.Fund
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, fund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating funds: %w", err)
	}

	return funds, nil
}

// Get returns the fund with the given ticker, or sql.ErrNoRows.
func (r *Repository) Get(ticker string) (domain.Fund, error) {
	row := r.db.QueryRow("SELECT "+fundColumns+" FROM funds WHERE ticker = ?", ticker)
	return scanFund(row)
}

// Count returns the number of funds in the catalog.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM funds").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count funds: %w", err)
	}
	return n, nil
}

// Upsert inserts or replaces a fund row. Used only at seed time; the catalog
// is read-only once the process is serving requests.
func (r *Repository) Upsert(f domain.Fund) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO funds (`+fundColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		f.Ticker, f.Name, string(f.Type), string(f.AssetClass), f.ExpenseRatio, f.AUM,
		f.Return1Y, f.Return3Y, f.Return5Y, f.Return10Y, f.StdDev3Y, f.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fund %s: %w", f.Ticker, err)
	}
	return nil
}

// SeedIfEmpty loads the bundled fund universe when the catalog has no rows.
func (r *Repository) SeedIfEmpty() error {
	n, err := r.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		r.log.Debug().Int("funds", n).Msg("Catalog already seeded")
		return nil
	}

	for _, f := range SeedFunds() {
		if err := r.Upsert(f); err != nil {
			return err
		}
	}
	r.log.Info().Int("funds", len(SeedFunds())).Msg("Seeded fund catalog")
	return nil
}

// Benchmarks returns the benchmark fund for each asset class that has one
// in the catalog. Classes whose benchmark ticker is absent are skipped.
func (r *Repository) Benchmarks() (map[domain.AssetClass]domain.Fund, error) {
	benchmarks := make(map[domain.AssetClass]domain.Fund, len(BenchmarkTickers))
	for class, ticker := range BenchmarkTickers {
		fund, err := r.Get(ticker)
		if err == sql.ErrNoRows {
			r.log.Warn().Str("ticker", ticker).Str("asset_class", string(class)).
				Msg("Benchmark fund missing from catalog")
			continue
		}
		if err != nil {
			return nil, err
		}
		benchmarks[class] = fund
	}
	return benchmarks, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFund(s scanner) (domain.Fund, error) {
	var f domain.Fund
	var fundType, assetClass string
	var r1, r3, r5, r10, sd sql.NullFloat64

	err := s.Scan(
		&f.Ticker, &f.Name, &fundType, &assetClass, &f.ExpenseRatio, &f.AUM,
		&r1, &r3, &r5, &r10, &sd, &f.Active,
	)
	if err != nil {
		return domain.Fund{}, fmt.Errorf("failed to scan fund: %w", err)
	}

	f.Type = domain.FundType(fundType)
	f.AssetClass = domain.AssetClass(assetClass)
	f.Return1Y = nullableFloat(r1)
	f.Return3Y = nullableFloat(r3)
	f.Return5Y = nullableFloat(r5)
	f.Return10Y = nullableFloat(r10)
	f.StdDev3Y = nullableFloat(sd)

	return f, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
