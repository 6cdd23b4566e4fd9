package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/milestones/internal/db"
	"github.com/alexanderramin/milestones/internal/domain"
)

// SQLiteDatasetRepo implements DatasetRepo using a SQLite database.
type SQLiteDatasetRepo struct {
	db db.DBTX
}

// NewSQLiteDatasetRepo creates a new SQLiteDatasetRepo. Pass a *sql.Tx to
// compose it into a unit of work.
func NewSQLiteDatasetRepo(db db.DBTX) *SQLiteDatasetRepo {
	return &SQLiteDatasetRepo{db: db}
}

const datasetColumns = `id, name, source_path, sheet, headers, row_count, created_at,
	name_col, contractual_col, actual_col, group_col`

func (r *SQLiteDatasetRepo) Create(ctx context.Context, d *domain.Dataset, rows []domain.RawRow) error {
	headers, err := json.Marshal(d.Headers)
	if err != nil {
		return fmt.Errorf("encoding headers: %w", err)
	}

	query := `INSERT INTO datasets (id, name, source_path, sheet, headers, row_count, created_at,
		name_col, contractual_col, actual_col, group_col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var m domain.ColumnMapping
	if d.Mapping != nil {
		m = *d.Mapping
	}
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.SourcePath,
		d.Sheet,
		string(headers),
		len(rows),
		d.CreatedAt.Format(time.RFC3339),
		nullableString(m.NameColumn),
		nullableString(m.ContractualColumn),
		nullableString(m.ActualColumn),
		nullableString(m.GroupColumn),
	)
	if err != nil {
		return fmt.Errorf("inserting dataset: %w", err)
	}

	for i, row := range rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO dataset_rows (dataset_id, row_index, cells) VALUES (?, ?, ?)`,
			d.ID, i, string(cells),
		); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}
	d.RowCount = len(rows)
	return nil
}

func (r *SQLiteDatasetRepo) GetByID(ctx context.Context, id string) (*domain.Dataset, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+datasetColumns+` FROM datasets WHERE id = ?`, id)
	return scanDataset(row)
}

func (r *SQLiteDatasetRepo) Resolve(ctx context.Context, idOrPrefix string) (*domain.Dataset, error) {
	if d, err := r.GetByID(ctx, idOrPrefix); err == nil {
		return d, nil
	} else if !errors.Is(err, ErrDatasetNotFound) {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE id LIKE ? ESCAPE '\' ORDER BY created_at LIMIT 2`,
		escapeLike(idOrPrefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving dataset: %w", err)
	}
	defer rows.Close()

	var matches []*domain.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%q: %w", idOrPrefix, ErrDatasetNotFound)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("dataset prefix %q is ambiguous", idOrPrefix)
}

func (r *SQLiteDatasetRepo) List(ctx context.Context) ([]*domain.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+datasetColumns+` FROM datasets ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	defer rows.Close()

	var datasets []*domain.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}
	return datasets, nil
}

func (r *SQLiteDatasetRepo) LoadTable(ctx context.Context, id string) (*domain.Table, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT cells FROM dataset_rows WHERE dataset_id = ? ORDER BY row_index`, id)
	if err != nil {
		return nil, fmt.Errorf("loading dataset rows: %w", err)
	}
	defer rows.Close()

	t := &domain.Table{Sheet: d.Sheet, Headers: d.Headers}
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		var row domain.RawRow
		if err := json.Unmarshal([]byte(cells), &row); err != nil {
			return nil, fmt.Errorf("decoding dataset row: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset rows: %w", err)
	}
	return t, nil
}

func (r *SQLiteDatasetRepo) UpdateMapping(ctx context.Context, id string, m *domain.ColumnMapping) error {
	var mapping domain.ColumnMapping
	if m != nil {
		mapping = *m
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE datasets SET name_col = ?, contractual_col = ?, actual_col = ?, group_col = ? WHERE id = ?`,
		nullableString(mapping.NameColumn),
		nullableString(mapping.ContractualColumn),
		nullableString(mapping.ActualColumn),
		nullableString(mapping.GroupColumn),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating dataset mapping: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%q: %w", id, ErrDatasetNotFound)
	}
	return nil
}

func (r *SQLiteDatasetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%q: %w", id, ErrDatasetNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDataset(row rowScanner) (*domain.Dataset, error) {
	var d domain.Dataset
	var headersJSON, createdAtStr string
	var nameCol, contractualCol, actualCol, groupCol sql.NullString

	err := row.Scan(
		&d.ID, &d.Name, &d.SourcePath, &d.Sheet,
		&headersJSON, &d.RowCount, &createdAtStr,
		&nameCol, &contractualCol, &actualCol, &groupCol,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDatasetNotFound
		}
		return nil, fmt.Errorf("scanning dataset: %w", err)
	}

	if err := json.Unmarshal([]byte(headersJSON), &d.Headers); err != nil {
		return nil, fmt.Errorf("decoding headers: %w", err)
	}
	created := parseNullableTime(sql.NullString{String: createdAtStr, Valid: true}, time.RFC3339)
	if created == nil {
		return nil, fmt.Errorf("parsing created_at %q", createdAtStr)
	}
	d.CreatedAt = *created

	if nameCol.Valid || contractualCol.Valid || actualCol.Valid {
		d.Mapping = &domain.ColumnMapping{
			NameColumn:        nameCol.String,
			ContractualColumn: contractualCol.String,
			ActualColumn:      actualCol.String,
			GroupColumn:       groupCol.String,
		}
	}
	return &d, nil
}
