// Package classifier maps free-text queries to intent categories and
// flags queries that carry confidential-data markers. Both functions are
// pure and total over any string input.
package classifier

import "strings"

// Category is the classifier's output bucket for a query.
type Category string

const (
	CategorySimple           Category = "simple"
	CategoryReminder         Category = "reminder"
	CategoryMedicalAdvice    Category = "medical_advice"
	CategoryEmotionalSupport Category = "emotional_support"
	CategoryHealthAnalysis   Category = "health_analysis"
	CategoryComplex          Category = "complex"
)

// IsSensitive reports whether the query contains any denylisted term.
// Case-insensitive substring containment, no word boundaries: a term
// embedded in a longer word also matches. That over-matching is accepted
// behavior, not a bug to fix here.
func IsSensitive(query string) bool {
	lowered := strings.ToLower(query)
	for _, term := range sensitiveTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// Classify returns the intent category for a query. Keyword sets are
// tested in a fixed priority order and the first hit wins; queries with
// no hit fall back to a word-count split (fewer than SimpleWordLimit
// whitespace tokens is simple, otherwise complex). The empty string
// classifies as simple.
func Classify(query string) Category {
	lowered := strings.ToLower(query)

	if containsAny(lowered, medicalAdviceKeywords) {
		return CategoryMedicalAdvice
	}
	if containsAny(lowered, emotionalSupportKeywords) {
		return CategoryEmotionalSupport
	}
	if containsAny(lowered, healthAnalysisKeywords) {
		return CategoryHealthAnalysis
	}
	if containsAny(lowered, reminderKeywords) {
		return CategoryReminder
	}

	if len(strings.Fields(query)) < SimpleWordLimit {
		return CategorySimple
	}
	return CategoryComplex
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
