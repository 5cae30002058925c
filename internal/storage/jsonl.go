// Package storage handles data persistence in JSONL and SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mverbeek/transgraph/internal/record"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all records from a JSONL file.
func ReadAll(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer f.Close()

	var records []record.Record
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var rec record.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	return records, nil
}

// Append adds a record to the end of a JSONL file.
func Append(path string, rec record.Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening records file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

// WriteAll writes all records to a JSONL file, replacing existing content.
func WriteAll(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating records file: %w", err)
	}
	defer f.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}

// FindByID searches for a record by ID.
func FindByID(records []record.Record, id string) (int, bool) {
	for i, rec := range records {
		if rec.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindByFingerprint searches for a record by content fingerprint.
func FindByFingerprint(records []record.Record, fingerprint string) (int, bool) {
	if fingerprint == "" {
		return -1, false
	}
	for i := range records {
		if records[i].Fingerprint() == fingerprint {
			return i, true
		}
	}
	return -1, false
}

// GenerateUniqueID returns an ID that doesn't conflict with existing records.
// If the base ID exists, appends -2, -3, etc.
func GenerateUniqueID(records []record.Record, baseID string) string {
	if _, found := FindByID(records, baseID); !found {
		return baseID
	}

	// Start at 2: baseID is taken, so first duplicate becomes baseID-2
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", baseID, i)
		if _, found := FindByID(records, candidate); !found {
			return candidate
		}
	}
}
