package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"   ":                 "",
		"Alex Smith":          "alex smith",
		"  ALEX   SMITH  ":    "alex smith",
		"alex\tsmith":         "alex smith",
		"U12  Blue":           "u12 blue",
		"already normalized":  "already normalized",
		"Mixed\n Whitespace ": "mixed whitespace",
	}

	for input, want := range cases {
		require.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  A  B ", "Alex Smith", "u12 blue", "  x "}
	for _, input := range inputs {
		once := Normalize(input)
		require.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestHeuristicExactBeatsPartial(t *testing.T) {
	candidates := []Candidate{
		{ID: "t1", Name: "U12 Blue Stars"}, // partial-qualifying, listed first
		{ID: "t2", Name: "U12 Blue"},       // exact
	}

	result := NewHeuristic().Match("U12 Blue", candidates)
	require.True(t, result.Matched())
	require.Equal(t, "t2", result.Candidate.ID)
	require.Equal(t, ConfidenceExact, result.Confidence)
}

func TestHeuristicFirstCandidateWinsWithinTier(t *testing.T) {
	candidates := []Candidate{
		{ID: "p1", Name: "Jordan Smithers"},
		{ID: "p2", Name: "Jordan Smithe"},
	}

	result := NewHeuristic().Match("Smithe", candidates)
	require.Equal(t, "p1", result.Candidate.ID)
	require.Equal(t, ConfidencePartial, result.Confidence)
}

func TestHeuristicNamePart(t *testing.T) {
	candidates := []Candidate{
		{ID: "p1", Name: "Casey Alvarez"},
	}

	result := NewHeuristic().Match("alvarez junior", candidates)
	require.True(t, result.Matched())
	require.Equal(t, "p1", result.Candidate.ID)
	require.Equal(t, ConfidenceNamePart, result.Confidence)
}

func TestHeuristicNamePartRequiresMultiTokenQuery(t *testing.T) {
	candidates := []Candidate{
		{ID: "p1", Name: "Riley Quintero"},
	}

	// "riley" is a token of the candidate, but a single-token query never
	// reaches the name-part tier (and does not partial-match "riley quintero"
	// only when it is not a substring — here it is, so pick a non-substring).
	result := NewHeuristic().Match("quinterox", candidates)
	require.False(t, result.Matched())
	require.Equal(t, ConfidenceNone, result.Confidence)
	require.Equal(t, -1, result.Index)
}

func TestHeuristicSkipsBlankCandidates(t *testing.T) {
	candidates := []Candidate{
		{ID: "t1", Name: ""},
		{ID: "t2", Name: "   "},
		{ID: "t3", Name: "U10 Red"},
	}

	result := NewHeuristic().Match("u10 red", candidates)
	require.True(t, result.Matched())
	require.Equal(t, "t3", result.Candidate.ID)
	require.Equal(t, ConfidenceExact, result.Confidence)
}

func TestHeuristicEmptyQuery(t *testing.T) {
	result := NewHeuristic().Match("   ", []Candidate{{ID: "t1", Name: "U10 Red"}})
	require.False(t, result.Matched())
}

func TestHeuristicNoCandidates(t *testing.T) {
	result := NewHeuristic().Match("Alex Smith", nil)
	require.False(t, result.Matched())
	require.Equal(t, -1, result.Index)
}
