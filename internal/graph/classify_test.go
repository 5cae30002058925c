package graph

import (
	"testing"

	"github.com/mverbeek/transgraph/internal/dimension"
)

func dim(t *testing.T, key string) dimension.Dimension {
	t.Helper()
	d, err := dimension.Parse(key)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", key, err)
	}
	return d
}

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b string
		want EdgeType
	}{
		{"authorName", "translatorName", EdgeTranslation},
		{"authorName", "publisher", EdgePublication},
		{"translatorName", "publisher", EdgePublication},
		{"publisher", "city", EdgePublication}, // publisher wins over geographic
		{"publisher", "publisher", EdgePublication},
		{"translatorName", "translatorName", EdgeCollaboration},
		{"authorName", "city", EdgeGeographic},
		{"city", "city", EdgeGeographic},
		{"city", "sourceLanguage", EdgeGeographic}, // city wins over linguistic
		{"authorName", "sourceLanguage", EdgeLinguistic},
		{"sourceLanguage", "targetLanguage", EdgeLinguistic},
		{"authorName", "authorName", EdgeCustom},
		{"custom:genre", "custom:era", EdgeCustom},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			a, b := dim(t, tt.a), dim(t, tt.b)
			if got := Classify(a, b); got != tt.want {
				t.Errorf("Classify(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			if got := Classify(b, a); got != tt.want {
				t.Errorf("Classify(%s, %s) = %s, want %s", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestClassifySymmetryExhaustive(t *testing.T) {
	keys := []string{
		"authorName", "translatorName", "publisher", "city",
		"sourceLanguage", "targetLanguage", "custom:genre",
	}
	for _, ka := range keys {
		for _, kb := range keys {
			a, b := dim(t, ka), dim(t, kb)
			if Classify(a, b) != Classify(b, a) {
				t.Errorf("Classify not symmetric for (%s, %s)", ka, kb)
			}
		}
	}
}

func TestParseEdgeTypes(t *testing.T) {
	types, ok := ParseEdgeTypes([]string{"TRANSLATION", "PUBLICATION"})
	if !ok || len(types) != 2 {
		t.Fatalf("ParseEdgeTypes valid input: got %v, %v", types, ok)
	}
	if _, ok := ParseEdgeTypes([]string{"translation"}); ok {
		t.Error("lowercase edge type names should be rejected")
	}
}
