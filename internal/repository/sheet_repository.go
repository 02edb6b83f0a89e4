package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// SheetRepositoryInterface is the tabular store: named append-only
// sheets of string cells. Rows keep insertion order and are never
// updated or deleted.
type SheetRepositoryInterface interface {
	// EnsureSheet creates the sheet if needed and writes the header row
	// iff the sheet has zero rows. The header is written at most once
	// per sheet, even under concurrent submissions.
	EnsureSheet(name string, header []string) error
	AppendRow(name string, cells []string) error
	ListRows(name string) ([][]string, error)
	CountRows(name string) (int, error)
}

type SheetRepository struct {
	DB *sql.DB
}

// Migrate creates the backing tables. Run from the seeder at deploy
// time; harmless to run again.
func (r *SheetRepository) Migrate() error {
	_, err := r.DB.Exec(`
        CREATE TABLE IF NOT EXISTS sheets (
            name TEXT PRIMARY KEY,
            header_written BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
        CREATE TABLE IF NOT EXISTS sheet_rows (
            id BIGSERIAL PRIMARY KEY,
            sheet_name TEXT NOT NULL REFERENCES sheets(name),
            cells TEXT[] NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
	return err
}

func (r *SheetRepository) EnsureSheet(name string, header []string) error {
	_, err := r.DB.Exec(`INSERT INTO sheets (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return err
	}

	// Compare-and-set: exactly one writer wins the right to append the
	// header, no matter how many submissions race on a fresh sheet.
	// Flag flip and header row share one transaction: a failed header
	// write rolls the flag back so the next submission retries it, and
	// a racing loser blocks on the row lock until the winner's header
	// has committed.
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE sheets SET header_written=TRUE WHERE name=$1 AND header_written=FALSE`, name)
	if err != nil {
		tx.Rollback()
		return err
	}
	won, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if won == 1 {
		_, err := tx.Exec(
			`INSERT INTO sheet_rows (sheet_name, cells) VALUES ($1, $2)`,
			name, pq.Array(header),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to write header for sheet %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func (r *SheetRepository) AppendRow(name string, cells []string) error {
	_, err := r.DB.Exec(
		`INSERT INTO sheet_rows (sheet_name, cells) VALUES ($1, $2)`,
		name, pq.Array(cells),
	)
	return err
}

func (r *SheetRepository) ListRows(name string) ([][]string, error) {
	rows, err := r.DB.Query(
		`SELECT cells FROM sheet_rows WHERE sheet_name=$1 ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := [][]string{}
	for rows.Next() {
		var cells []string
		if err := rows.Scan(pq.Array(&cells)); err != nil {
			return nil, err
		}
		result = append(result, cells)
	}
	return result, rows.Err()
}

func (r *SheetRepository) CountRows(name string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM sheet_rows WHERE sheet_name=$1`, name).Scan(&count)
	return count, err
}

var _ SheetRepositoryInterface = (*SheetRepository)(nil)
