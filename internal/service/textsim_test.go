package service

import (
	"math"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ============================================================================
// AnswerTextSimilarity Tests
// ============================================================================

func TestAnswerTextSimilarity_BothMissing_ReturnsNeutral(t *testing.T) {
	t.Parallel()
	if got := AnswerTextSimilarity(nil, nil); got != NeutralScore {
		t.Errorf("expected %v, got %v", NeutralScore, got)
	}
}

func TestAnswerTextSimilarity_SentinelCountsAsMissing(t *testing.T) {
	t.Parallel()
	if got := AnswerTextSimilarity(strPtr("missing"), strPtr("  MISSING ")); got != NeutralScore {
		t.Errorf("expected %v, got %v", NeutralScore, got)
	}
}

func TestAnswerTextSimilarity_BlankCountsAsMissing(t *testing.T) {
	t.Parallel()
	if got := AnswerTextSimilarity(strPtr("   "), nil); got != NeutralScore {
		t.Errorf("expected %v, got %v", NeutralScore, got)
	}
}

func TestAnswerTextSimilarity_OneMissing_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := AnswerTextSimilarity(strPtr("hello"), nil); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := AnswerTextSimilarity(nil, strPtr("hello")); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestAnswerTextSimilarity_ExactMatchIgnoresCase(t *testing.T) {
	t.Parallel()
	if got := AnswerTextSimilarity(strPtr("  Computer Science "), strPtr("computer science")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestAnswerTextSimilarity_ShortStringsUseSequenceRatio(t *testing.T) {
	t.Parallel()
	// "abc" vs "abd": LCS is "ab", ratio 2*2/(3+3).
	got := AnswerTextSimilarity(strPtr("abc"), strPtr("abd"))
	if !almostEqual(got, 2.0/3.0) {
		t.Errorf("expected %v, got %v", 2.0/3.0, got)
	}
}

func TestAnswerTextSimilarity_LongStringsUseWordOverlap(t *testing.T) {
	t.Parallel()
	// Word sets {software, engineering} and {software, design}:
	// intersection 1, union 3.
	got := AnswerTextSimilarity(strPtr("software engineering"), strPtr("software design"))
	if !almostEqual(got, 1.0/3.0) {
		t.Errorf("expected %v, got %v", 1.0/3.0, got)
	}
}

func TestAnswerTextSimilarity_Symmetric(t *testing.T) {
	t.Parallel()
	a := strPtr("likes quiet evenings")
	b := strPtr("quiet mornings")
	if AnswerTextSimilarity(a, b) != AnswerTextSimilarity(b, a) {
		t.Error("expected symmetric similarity")
	}
}

// ============================================================================
// FreeTextSimilarity Tests
// ============================================================================

func TestFreeTextSimilarity_EitherEmpty_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := FreeTextSimilarity("", "anything"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := FreeTextSimilarity("anything", "   "); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestFreeTextSimilarity_PunctuationOnly_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := FreeTextSimilarity("?!...", "hello"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestFreeTextSimilarity_IdenticalAfterNormalization(t *testing.T) {
	t.Parallel()
	got := FreeTextSimilarity("I love cooking!", "i love   cooking")
	if !almostEqual(got, 1) {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestFreeTextSimilarity_BlendsSequenceAndWordOverlap(t *testing.T) {
	t.Parallel()
	a := "quiet and tidy"
	b := "quiet and messy"
	seq := sequenceRatio("quiet and tidy", "quiet and messy")
	jac := 2.0 / 4.0
	want := 0.7*seq + 0.3*jac
	got := FreeTextSimilarity(a, b)
	if !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFreeTextSimilarity_InRange(t *testing.T) {
	t.Parallel()
	pairs := [][2]string{
		{"night owl, loves music", "early bird"},
		{"a", "b"},
		{"the same text", "the same text"},
	}
	for _, p := range pairs {
		got := FreeTextSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("similarity %v out of range for %q vs %q", got, p[0], p[1])
		}
	}
}

// ============================================================================
// sequenceRatio Tests
// ============================================================================

func TestSequenceRatio_BothEmpty_ReturnsOne(t *testing.T) {
	t.Parallel()
	if got := sequenceRatio("", ""); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestSequenceRatio_OneEmpty_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := sequenceRatio("abc", ""); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSequenceRatio_Disjoint_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := sequenceRatio("abc", "xyz"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// ============================================================================
// jaccard Tests
// ============================================================================

func TestJaccard_EmptyUnion_ReturnsZero(t *testing.T) {
	t.Parallel()
	if got := jaccard(nil, nil); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestJaccard_DuplicateTokensCollapse(t *testing.T) {
	t.Parallel()
	got := jaccard([]string{"a", "a", "b"}, []string{"a"})
	if !almostEqual(got, 0.5) {
		t.Errorf("expected 0.5, got %v", got)
	}
}
