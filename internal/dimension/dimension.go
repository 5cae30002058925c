// Package dimension maps record attributes onto graph axes. A dimension
// names one attribute of a record (author, translator, publisher,
// place, language, or a user-defined custom field) and knows how to
// resolve its value for node construction.
package dimension

import (
	"fmt"
	"strings"

	"github.com/mverbeek/transgraph/internal/record"
)

// Kind enumerates the built-in attributes plus the custom namespace.
type Kind int

const (
	AuthorName Kind = iota
	TranslatorName
	Publisher
	City
	SourceLanguage
	TargetLanguage
	Custom
)

// CustomPrefix addresses the record's open field map, e.g. "custom:genre".
const CustomPrefix = "custom:"

// Dimension is a value type identifying one record attribute.
// The zero value is AuthorName; Custom dimensions carry the field name.
type Dimension struct {
	Kind  Kind
	Field string // Custom field name, empty for built-ins
}

// builtins maps the wire keys to kinds. Key strings are part of the
// configuration format and must not change.
var builtins = map[string]Kind{
	"authorName":     AuthorName,
	"translatorName": TranslatorName,
	"publisher":      Publisher,
	"city":           City,
	"sourceLanguage": SourceLanguage,
	"targetLanguage": TargetLanguage,
}

var builtinKeys = map[Kind]string{
	AuthorName:     "authorName",
	TranslatorName: "translatorName",
	Publisher:      "publisher",
	City:           "city",
	SourceLanguage: "sourceLanguage",
	TargetLanguage: "targetLanguage",
}

// Builtins returns all built-in dimensions in canonical order.
func Builtins() []Dimension {
	return []Dimension{
		{Kind: AuthorName},
		{Kind: TranslatorName},
		{Kind: Publisher},
		{Kind: City},
		{Kind: SourceLanguage},
		{Kind: TargetLanguage},
	}
}

// Parse converts a configuration key into a Dimension.
// Accepts the built-in keys and "custom:<field>".
func Parse(key string) (Dimension, error) {
	if kind, ok := builtins[key]; ok {
		return Dimension{Kind: kind}, nil
	}
	if field, ok := strings.CutPrefix(key, CustomPrefix); ok {
		if field == "" {
			return Dimension{}, fmt.Errorf("custom dimension needs a field name: %q", key)
		}
		return Dimension{Kind: Custom, Field: field}, nil
	}
	return Dimension{}, fmt.Errorf("unknown dimension %q", key)
}

// ParseAll converts a list of configuration keys, preserving order.
func ParseAll(keys []string) ([]Dimension, error) {
	dims := make([]Dimension, 0, len(keys))
	for _, key := range keys {
		d, err := Parse(key)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// Key returns the configuration key for this dimension.
func (d Dimension) Key() string {
	if d.Kind == Custom {
		return CustomPrefix + d.Field
	}
	return builtinKeys[d.Kind]
}

// Resolve extracts this dimension's raw value from a record.
// Custom dimensions read the open field map; a missing key yields "".
func (d Dimension) Resolve(r *record.Record) string {
	switch d.Kind {
	case AuthorName:
		return r.Author.Name
	case TranslatorName:
		return r.Translator.Name
	case Publisher:
		return r.Publisher
	case City:
		return r.City
	case SourceLanguage:
		return r.SourceLanguage
	case TargetLanguage:
		return r.TargetLanguage
	case Custom:
		return r.Custom[d.Field]
	}
	return ""
}

// IsAbsent reports whether a resolved value counts as missing. "Unknown"
// and "N/A" placeholders are filtered so they never become hub nodes.
func IsAbsent(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "Unknown", "N/A":
		return true
	}
	return false
}
