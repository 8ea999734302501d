package storage

import (
	"database/sql"
	"fmt"

	"codes2json/palette"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists normalized palette records. Each record keeps its
// fields in source order together with their value kinds.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS colors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_file TEXT NOT NULL,
	row_index INTEGER NOT NULL CHECK(row_index >= 0),
	color_name TEXT NOT NULL DEFAULT '',
	hex TEXT,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(source_file, row_index)
);
CREATE TABLE IF NOT EXISTS color_fields (
	color_id INTEGER NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('null', 'text', 'integer')),
	text_value TEXT,
	int_value INTEGER,
	PRIMARY KEY(color_id, position)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ReplacePalette swaps every record previously imported from sourceFile for
// records, in one transaction. It returns the number of records stored.
func (s *SQLiteStore) ReplacePalette(sourceFile string, records []palette.Record) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM color_fields WHERE color_id IN (SELECT id FROM colors WHERE source_file = ?);`, sourceFile); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete previous color fields: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM colors WHERE source_file = ?;`, sourceFile); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete previous colors: %w", err)
	}

	colorStmt, err := tx.Prepare(`INSERT INTO colors (source_file, row_index, color_name, hex) VALUES (?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare color insert: %w", err)
	}
	defer colorStmt.Close()

	fieldStmt, err := tx.Prepare(`INSERT INTO color_fields (color_id, position, name, kind, text_value, int_value) VALUES (?, ?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare field insert: %w", err)
	}
	defer fieldStmt.Close()

	inserted := 0
	for i, record := range records {
		var hex sql.NullString
		if color, ok := record.Color(); ok {
			hex = sql.NullString{String: color.Hex(), Valid: true}
		}

		res, err := colorStmt.Exec(sourceFile, i, record.DisplayName(), hex)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert color row %d: %w", i, err)
		}
		colorID, err := res.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("read inserted color id: %w", err)
		}

		for position, field := range record.Fields {
			textValue, intValue := fieldColumns(field.Value)
			if _, err := fieldStmt.Exec(colorID, position, field.Name, field.Value.Kind().String(), textValue, intValue); err != nil {
				_ = tx.Rollback()
				return inserted, fmt.Errorf("insert field %q of color row %d: %w", field.Name, i, err)
			}
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListColors returns every stored record ordered by import.
func (s *SQLiteStore) ListColors() ([]palette.Record, error) {
	const query = `
SELECT
	f.color_id,
	f.name,
	f.kind,
	f.text_value,
	f.int_value
FROM color_fields f
JOIN colors c ON c.id = f.color_id
ORDER BY c.id, f.position;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query colors: %w", err)
	}
	defer rows.Close()

	records := make([]palette.Record, 0, 256)
	currentID := int64(-1)
	for rows.Next() {
		var (
			colorID   int64
			name      string
			kind      string
			textValue sql.NullString
			intValue  sql.NullInt64
		)
		if err := rows.Scan(&colorID, &name, &kind, &textValue, &intValue); err != nil {
			return nil, fmt.Errorf("scan color field: %w", err)
		}

		if colorID != currentID {
			records = append(records, palette.Record{})
			currentID = colorID
		}
		record := &records[len(records)-1]
		record.Fields = append(record.Fields, palette.Field{Name: name, Value: valueFromColumns(kind, textValue, intValue)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate colors: %w", err)
	}

	return records, nil
}

func (s *SQLiteStore) CountColors() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM colors;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count colors: %w", err)
	}
	return count, nil
}

func fieldColumns(value palette.Value) (sql.NullString, sql.NullInt64) {
	if text, ok := value.Text(); ok {
		return sql.NullString{String: text, Valid: true}, sql.NullInt64{}
	}
	if n, ok := value.Int(); ok {
		return sql.NullString{}, sql.NullInt64{Int64: n, Valid: true}
	}
	return sql.NullString{}, sql.NullInt64{}
}

func valueFromColumns(kind string, textValue sql.NullString, intValue sql.NullInt64) palette.Value {
	switch palette.ParseKind(kind) {
	case palette.KindText:
		return palette.Text(textValue.String)
	case palette.KindInteger:
		return palette.Integer(intValue.Int64)
	default:
		return palette.Null()
	}
}
