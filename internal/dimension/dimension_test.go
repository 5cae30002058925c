package dimension

import (
	"testing"

	"github.com/mverbeek/transgraph/internal/record"
)

func TestParse(t *testing.T) {
	tests := []struct {
		key     string
		want    Dimension
		wantErr bool
	}{
		{key: "authorName", want: Dimension{Kind: AuthorName}},
		{key: "translatorName", want: Dimension{Kind: TranslatorName}},
		{key: "publisher", want: Dimension{Kind: Publisher}},
		{key: "city", want: Dimension{Kind: City}},
		{key: "sourceLanguage", want: Dimension{Kind: SourceLanguage}},
		{key: "targetLanguage", want: Dimension{Kind: TargetLanguage}},
		{key: "custom:genre", want: Dimension{Kind: Custom, Field: "genre"}},
		{key: "custom:", wantErr: true},
		{key: "author", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Parse(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{
		"authorName", "translatorName", "publisher", "city",
		"sourceLanguage", "targetLanguage", "custom:genre",
	}
	for _, key := range keys {
		d, err := Parse(key)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", key, err)
		}
		if got := d.Key(); got != key {
			t.Errorf("Key() = %q, want %q", got, key)
		}
	}
}

func TestResolve(t *testing.T) {
	rec := &record.Record{
		Title:          "Don Quixote",
		Author:         record.Person{Name: "Cervantes"},
		Translator:     record.Person{Name: "Tieck"},
		Publisher:      "Reimer",
		City:           "Berlin",
		SourceLanguage: "Spanish",
		TargetLanguage: "German",
		Custom:         map[string]string{"genre": "novella"},
	}

	tests := []struct {
		key  string
		want string
	}{
		{"authorName", "Cervantes"},
		{"translatorName", "Tieck"},
		{"publisher", "Reimer"},
		{"city", "Berlin"},
		{"sourceLanguage", "Spanish"},
		{"targetLanguage", "German"},
		{"custom:genre", "novella"},
		{"custom:missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d, err := Parse(tt.key)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.key, err)
			}
			if got := d.Resolve(rec); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveNilCustomMap(t *testing.T) {
	d := Dimension{Kind: Custom, Field: "genre"}
	if got := d.Resolve(&record.Record{}); got != "" {
		t.Errorf("Resolve() on nil custom map = %q, want empty", got)
	}
}

func TestIsAbsent(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"Unknown", true},
		{"  Unknown  ", true},
		{"N/A", true},
		{"unknown", false}, // sentinels are case-sensitive
		{"n/a", false},
		{"Berlin", false},
		{"Unknown Publisher", false},
	}

	for _, tt := range tests {
		if got := IsAbsent(tt.value); got != tt.want {
			t.Errorf("IsAbsent(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
