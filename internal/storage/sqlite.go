package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mverbeek/transgraph/internal/record"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectRecordFields contains the standard field list for SELECT queries.
const selectRecordFields = `id, title, year, author, translator, publisher,
	city, original_city, source_language, target_language,
	custom_json, source_type, source_id`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main records table
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			author TEXT,
			translator TEXT,
			publisher TEXT,
			city TEXT,
			original_city TEXT,
			source_language TEXT,
			target_language TEXT,
			custom_json TEXT,
			source_type TEXT NOT NULL,
			source_id TEXT
		);

		-- Index for year-range listing
		CREATE INDEX IF NOT EXISTS idx_records_year ON records(year);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			id,
			title,
			author,
			translator
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	records, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("clearing records table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM records_fts"); err != nil {
		return 0, fmt.Errorf("clearing records_fts table: %w", err)
	}

	recStmt, err := d.db.Prepare(`
		INSERT INTO records (
			id, title, year, author, translator, publisher,
			city, original_city, source_language, target_language,
			custom_json, source_type, source_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing records insert: %w", err)
	}
	defer recStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO records_fts (id, title, author, translator)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, rec := range records {
		var customJSON []byte
		if len(rec.Custom) > 0 {
			customJSON, err = json.Marshal(rec.Custom)
			if err != nil {
				return 0, fmt.Errorf("marshaling custom fields for %s: %w", rec.ID, err)
			}
		}

		_, err = recStmt.Exec(
			rec.ID, rec.Title, rec.Year,
			nullableStringValue(rec.Author.Name), nullableStringValue(rec.Translator.Name),
			nullableStringValue(rec.Publisher),
			nullableStringValue(rec.City), nullableStringValue(rec.OriginalCity),
			nullableStringValue(rec.SourceLanguage), nullableStringValue(rec.TargetLanguage),
			nullableString(customJSON), rec.Source.Type, nullableStringValue(rec.Source.ID),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting record %s: %w", rec.ID, err)
		}

		_, err = ftsStmt.Exec(rec.ID, rec.Title, rec.Author.Name, rec.Translator.Name)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", rec.ID, err)
		}
	}

	return len(records), nil
}

// GetByID retrieves a record by its ID.
func (d *DB) GetByID(id string) (*record.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectRecordFields+` FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

// Search performs a full-text search over title, author and translator.
func (d *DB) Search(query string, limit int) ([]record.Record, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectRecordFields+`
		FROM records
		WHERE id IN (SELECT id FROM records_fts WHERE records_fts MATCH ?)
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListFilters contains optional filters for ListFiltered.
type ListFilters struct {
	YearFrom   int    // Minimum publication year (0 = no minimum)
	YearTo     int    // Maximum publication year (0 = no maximum)
	Publisher  string // Filter by publisher (SQL LIKE, case-insensitive)
	SourceLang string // Exact source language match
	TargetLang string // Exact target language match
}

// ListFiltered returns records matching all specified filters.
func (d *DB) ListFiltered(filters ListFilters, limit int) ([]record.Record, error) {
	query := `SELECT ` + selectRecordFields + ` FROM records WHERE 1=1`
	var args []interface{}

	if filters.YearFrom > 0 {
		query += " AND year >= ?"
		args = append(args, filters.YearFrom)
	}
	if filters.YearTo > 0 {
		query += " AND year <= ?"
		args = append(args, filters.YearTo)
	}
	if filters.Publisher != "" {
		query += " AND publisher LIKE ?"
		args = append(args, "%"+filters.Publisher+"%")
	}
	if filters.SourceLang != "" {
		query += " AND source_language = ?"
		args = append(args, filters.SourceLang)
	}
	if filters.TargetLang != "" {
		query += " AND target_language = ?"
		args = append(args, filters.TargetLang)
	}

	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListAll returns all records, optionally limited.
func (d *DB) ListAll(limit int) ([]record.Record, error) {
	return d.ListFiltered(ListFilters{}, limit)
}

// Count returns the total number of records.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record
	var author, translator, publisher sql.NullString
	var city, originalCity, sourceLang, targetLang sql.NullString
	var customJSON, sourceID sql.NullString

	err := s.Scan(
		&rec.ID, &rec.Title, &rec.Year,
		&author, &translator, &publisher,
		&city, &originalCity, &sourceLang, &targetLang,
		&customJSON, &rec.Source.Type, &sourceID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rec.Author.Name = author.String
	rec.Translator.Name = translator.String
	rec.Publisher = publisher.String
	rec.City = city.String
	rec.OriginalCity = originalCity.String
	rec.SourceLanguage = sourceLang.String
	rec.TargetLanguage = targetLang.String
	rec.Source.ID = sourceID.String

	if customJSON.Valid && customJSON.String != "" {
		if err := json.Unmarshal([]byte(customJSON.String), &rec.Custom); err != nil {
			return nil, fmt.Errorf("parsing custom fields JSON for %s: %w", rec.ID, err)
		}
	}

	return &rec, nil
}

func scanRecords(rows *sql.Rows) ([]record.Record, error) {
	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, rows.Err()
}

func nullableString(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
