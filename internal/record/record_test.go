package record

import (
	"errors"
	"testing"
)

func TestValidateForCreate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr error
	}{
		{
			name: "valid record",
			rec: Record{
				Title:  "Die Schachnovelle",
				Year:   1942,
				Author: Person{Name: "Stefan Zweig"},
			},
		},
		{
			name: "title only",
			rec:  Record{Title: "Untitled fragment"},
		},
		{
			name:    "missing title",
			rec:     Record{Year: 1942},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			rec:     Record{Title: "   "},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative year",
			rec:     Record{Title: "X", Year: -1},
			wantErr: ErrBadYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.ValidateForCreate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForCreate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := Record{
		Title:      "Don Quixote",
		Year:       1922,
		Author:     Person{Name: "Miguel de Cervantes"},
		Translator: Person{Name: "Ludwig Tieck"},
	}

	messy := Record{
		Title:      "  don   QUIXOTE ",
		Year:       1922,
		Author:     Person{Name: "MIGUEL DE CERVANTES"},
		Translator: Person{Name: "ludwig  tieck"},
	}
	if base.Fingerprint() != messy.Fingerprint() {
		t.Error("fingerprint should ignore case and whitespace differences")
	}

	other := base
	other.Year = 1923
	if base.Fingerprint() == other.Fingerprint() {
		t.Error("fingerprint should change with the year")
	}

	if got := len(base.Fingerprint()); got != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", got)
	}
}

func TestBaseID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "author and year",
			rec:  Record{Author: Person{Name: "Stefan Zweig"}, Year: 1922},
			want: "Zweig1922",
		},
		{
			name: "no author falls back to title",
			rec:  Record{Title: "Decameron", Year: 1951},
			want: "Decameron1951",
		},
		{
			name: "no year",
			rec:  Record{Author: Person{Name: "Stefan Zweig"}},
			want: "Zweig",
		},
		{
			name: "nothing at all",
			rec:  Record{},
			want: "Record",
		},
		{
			name: "lowercase surname with diacritics",
			rec:  Record{Author: Person{Name: "antoine de saint-exupéry"}, Year: 1943},
			want: "Saint1943",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.BaseID(); got != tt.want {
				t.Errorf("BaseID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetManualSource(t *testing.T) {
	var r Record
	r.SetManualSource()
	if r.Source.Type != "manual" {
		t.Errorf("Source.Type = %q, want manual", r.Source.Type)
	}
	if r.Source.ID == "" {
		t.Error("Source.ID should be stamped")
	}

	imported := Record{Source: ImportSource{Type: "xlsx", ID: "Sheet1:4"}}
	imported.SetManualSource()
	if imported.Source.Type != "xlsx" || imported.Source.ID != "Sheet1:4" {
		t.Error("SetManualSource should not overwrite an existing source")
	}
}
