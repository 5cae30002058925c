package graph

import (
	"github.com/mverbeek/transgraph/internal/dimension"
)

// Classify assigns an edge type to a pair of dimensions. The rules are
// checked in precedence order, so a publisher–city edge is PUBLICATION
// and never GEOGRAPHIC:
//
//	author+translator          TRANSLATION
//	either is publisher        PUBLICATION
//	translator+translator      COLLABORATION
//	either is city             GEOGRAPHIC
//	either is a language       LINGUISTIC
//	anything else              CUSTOM
//
// Classification is symmetric: Classify(a, b) == Classify(b, a).
func Classify(a, b dimension.Dimension) EdgeType {
	switch {
	case isPair(a, b, dimension.AuthorName, dimension.TranslatorName):
		return EdgeTranslation
	case a.Kind == dimension.Publisher || b.Kind == dimension.Publisher:
		return EdgePublication
	case a.Kind == dimension.TranslatorName && b.Kind == dimension.TranslatorName:
		return EdgeCollaboration
	case a.Kind == dimension.City || b.Kind == dimension.City:
		return EdgeGeographic
	case isLanguage(a) || isLanguage(b):
		return EdgeLinguistic
	default:
		return EdgeCustom
	}
}

func isPair(a, b dimension.Dimension, x, y dimension.Kind) bool {
	return (a.Kind == x && b.Kind == y) || (a.Kind == y && b.Kind == x)
}

func isLanguage(d dimension.Dimension) bool {
	return d.Kind == dimension.SourceLanguage || d.Kind == dimension.TargetLanguage
}

// ParseEdgeType converts a wire name into an EdgeType.
func ParseEdgeType(s string) (EdgeType, bool) {
	for _, t := range AllEdgeTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ParseEdgeTypes converts a list of wire names, rejecting unknowns.
func ParseEdgeTypes(names []string) ([]EdgeType, bool) {
	types := make([]EdgeType, 0, len(names))
	for _, name := range names {
		t, ok := ParseEdgeType(name)
		if !ok {
			return nil, false
		}
		types = append(types, t)
	}
	return types, true
}
