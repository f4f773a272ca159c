package matching

import "strings"

// Confidence ranks how a candidate matched. It is used for logging and
// priority ordering only; it carries no numeric score.
type Confidence string

const (
	ConfidenceExact    Confidence = "exact"
	ConfidencePartial  Confidence = "partial"
	ConfidenceNamePart Confidence = "name-part"
	ConfidenceNone     Confidence = ""
)

// Candidate is one match target. Candidates with blank names are never
// selected; callers may pass them through without pre-filtering.
type Candidate struct {
	ID   string
	Name string
}

// Result reports the first qualifying candidate and the tier it qualified at.
// Index is -1 when nothing matched.
type Result struct {
	Index      int
	Candidate  Candidate
	Confidence Confidence
}

func (r Result) Matched() bool {
	return r.Index >= 0 && r.Confidence != ConfidenceNone
}

// Strategy decides how a query name is matched against candidates. The stage
// executors only depend on this interface, so stricter algorithms (edit
// distance, phonetic matching) can be swapped in without touching stage logic.
type Strategy interface {
	Match(query string, candidates []Candidate) Result
}

// Heuristic is the default matcher: three tiers evaluated in strict priority
// order, first qualifying candidate wins within each tier.
//
//  1. exact: normalized equality
//  2. partial: either normalized name contains the other (deliberately cheap;
//     short names can false-positive, e.g. "Al" inside "Albert")
//  3. name-part: only when the query has two or more tokens, any candidate
//     token present in the query token set
//
// Ties are broken by candidate order. No scoring, no Levenshtein, no
// locale-aware collation.
type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

func (Heuristic) Match(query string, candidates []Candidate) Result {
	noMatch := Result{Index: -1, Confidence: ConfidenceNone}

	normalizedQuery := Normalize(query)
	if normalizedQuery == "" {
		return noMatch
	}

	normalized := make([]string, len(candidates))
	for i, candidate := range candidates {
		normalized[i] = Normalize(candidate.Name)
	}

	for i, name := range normalized {
		if name == "" {
			continue
		}
		if name == normalizedQuery {
			return Result{Index: i, Candidate: candidates[i], Confidence: ConfidenceExact}
		}
	}

	for i, name := range normalized {
		if name == "" {
			continue
		}
		if strings.Contains(name, normalizedQuery) || strings.Contains(normalizedQuery, name) {
			return Result{Index: i, Candidate: candidates[i], Confidence: ConfidencePartial}
		}
	}

	queryTokens := strings.Split(normalizedQuery, " ")
	if len(queryTokens) < 2 {
		return noMatch
	}
	querySet := make(map[string]struct{}, len(queryTokens))
	for _, token := range queryTokens {
		querySet[token] = struct{}{}
	}

	for i, name := range normalized {
		if name == "" {
			continue
		}
		for _, token := range strings.Split(name, " ") {
			if _, ok := querySet[token]; ok {
				return Result{Index: i, Candidate: candidates[i], Confidence: ConfidenceNamePart}
			}
		}
	}

	return noMatch
}
