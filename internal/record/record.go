// Package record defines the core domain types for bibliographic records
// of translated works.
package record

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/blake2b"
)

// Person is a named agent attached to a record (author or translator).
type Person struct {
	Name string `json:"name"`
}

// Record represents one translated work.
type Record struct {
	// Identity
	ID string `json:"id"` // Internal stable identifier (citekey-style)

	// Metadata
	Title      string `json:"title"`
	Year       int    `json:"year"` // Publication year, 0 if unknown
	Author     Person `json:"author"`
	Translator Person `json:"translator"`
	Publisher  string `json:"publisher"`

	// Places
	City         string `json:"city"`          // Publication place
	OriginalCity string `json:"original_city"` // Source place of the original work

	// Languages
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`

	// Open namespace for user-defined dimensions
	Custom map[string]string `json:"custom,omitempty"`

	// Import tracking
	Source ImportSource `json:"source"`
}

// ImportSource tracks where a record was imported from.
type ImportSource struct {
	Type string `json:"type"` // xlsx, manual
	ID   string `json:"id"`   // Original row/sheet reference from source system
}

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title is required")
	ErrBadYear    = errors.New("year must be between 0 and 3000")
)

// ValidateForCreate validates a record for creation. Missing agent or
// place fields are allowed; resolvers treat them as absent.
func (r *Record) ValidateForCreate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Year < 0 || r.Year > 3000 {
		return ErrBadYear
	}
	return nil
}

// Fingerprint returns a stable BLAKE2b-256 content hash over the fields
// that identify a work. Used for import deduplication: two rows with
// the same title, year, author and translator are the same record.
func (r *Record) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{
		normalizeKey(r.Title),
		strconv.Itoa(r.Year),
		normalizeKey(r.Author.Name),
		normalizeKey(r.Translator.Name),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// BaseID derives a citekey-style identifier from author surname and year,
// e.g. "Zweig1927". Falls back to a title slug when no author is set.
func (r *Record) BaseID() string {
	name := surname(r.Author.Name)
	if name == "" {
		name = slugWord(r.Title)
	}
	if name == "" {
		name = "Record"
	}
	if r.Year > 0 {
		return fmt.Sprintf("%s%d", name, r.Year)
	}
	return name
}

// SetManualSource marks a record as manually entered, stamping the
// creation time as the source ID if none is set.
func (r *Record) SetManualSource() {
	if r.Source.Type == "" {
		r.Source.Type = "manual"
	}
	if r.Source.ID == "" {
		r.Source.ID = time.Now().UTC().Format(time.RFC3339)
	}
}

// surname extracts the last whitespace-separated token of a name,
// stripped of non-letter runes.
func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return slugWord(fields[len(fields)-1])
}

// slugWord keeps the leading letters of the first word, title-cased.
func slugWord(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsLetter(r) {
			break
		}
		if b.Len() == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeKey lowercases and collapses whitespace for hashing.
func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
