package service

import (
	"testing"

	"github.com/roomatch/api/internal/model"
)

func intPtr(n int) *int {
	return &n
}

func radioQuestion(id int) *model.Question {
	return &model.Question{ID: id, Type: model.QuestionTypeRadio, Weight: 1}
}

func textQuestion(id int) *model.Question {
	return &model.Question{ID: id, Type: model.QuestionTypeText, Weight: 1}
}

func radioAnswer(questionID, value int) *model.Answer {
	return &model.Answer{QuestionID: questionID, Value: intPtr(value)}
}

func textAnswer(questionID int, text string) *model.Answer {
	return &model.Answer{QuestionID: questionID, Text: strPtr(text)}
}

func newTestScorer() *QuestionScorer {
	return NewQuestionScorer(DefaultScoringPolicy())
}

// ============================================================================
// Radio Scoring Tests
// ============================================================================

func TestSimilarity_Radio_Identical_ReturnsOne(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(radioQuestion(5), radioAnswer(5, 3), radioAnswer(5, 3))
	if got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestSimilarity_Radio_LinearDecay(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	cases := []struct {
		a, b int
		want float64
	}{
		{1, 2, 0.75},
		{1, 3, 0.5},
		{1, 4, 0.25},
		{1, 5, 0},
	}
	for _, tc := range cases {
		got := s.Similarity(radioQuestion(5), radioAnswer(5, tc.a), radioAnswer(5, tc.b))
		if !almostEqual(got, tc.want) {
			t.Errorf("values %d vs %d: expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestSimilarity_Radio_MissingValue_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	unanswered := &model.Answer{QuestionID: 5}
	if got := s.Similarity(radioQuestion(5), unanswered, radioAnswer(5, 3)); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := s.Similarity(radioQuestion(5), radioAnswer(5, 3), unanswered); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// ============================================================================
// Critical Question Tests
// ============================================================================

func TestSimilarity_CriticalQuestion_SteepDropoff(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	cases := []struct {
		a, b int
		want float64
	}{
		{2, 2, 1},
		{2, 3, 0.3},
		{2, 4, 0},
		{1, 5, 0},
	}
	for _, tc := range cases {
		got := s.Similarity(radioQuestion(8), radioAnswer(8, tc.a), radioAnswer(8, tc.b))
		if !almostEqual(got, tc.want) {
			t.Errorf("values %d vs %d: expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestSimilarity_CriticalQuestion_OverridesLinearFormula(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	// A difference of 2 scores 0.5 on a regular question but 0 on the
	// critical one.
	regular := s.Similarity(radioQuestion(5), radioAnswer(5, 1), radioAnswer(5, 3))
	critical := s.Similarity(radioQuestion(8), radioAnswer(8, 1), radioAnswer(8, 3))
	if !almostEqual(regular, 0.5) {
		t.Errorf("expected regular 0.5, got %v", regular)
	}
	if critical != 0 {
		t.Errorf("expected critical 0, got %v", critical)
	}
}

// ============================================================================
// Year Question Tests
// ============================================================================

func TestSimilarity_YearQuestion_Thresholds(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	cases := []struct {
		a, b string
		want float64
	}{
		{"2024", "2024", 1},
		{"2024", "2025", 0.8},
		{"2024", "2026", 0.3},
		{"2024", "2027", 0},
		{"2027", "2024", 0},
	}
	for _, tc := range cases {
		got := s.Similarity(textQuestion(2), textAnswer(2, tc.a), textAnswer(2, tc.b))
		if !almostEqual(got, tc.want) {
			t.Errorf("years %q vs %q: expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestSimilarity_YearQuestion_NonNumericEqualStrings_ReturnsOne(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(textQuestion(2), textAnswer(2, "first year"), textAnswer(2, " first year "))
	if got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestSimilarity_YearQuestion_NonNumericDifferent_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(textQuestion(2), textAnswer(2, "first"), textAnswer(2, "second"))
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSimilarity_YearQuestion_MissingSide_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(textQuestion(2), textAnswer(2, "missing"), textAnswer(2, "2024"))
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// ============================================================================
// Other Text / Reserved Question Tests
// ============================================================================

func TestSimilarity_ReservedQuestion_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(textQuestion(1), textAnswer(1, "same"), textAnswer(1, "same"))
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSimilarity_UnscoredTextQuestion_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	got := s.Similarity(textQuestion(9), textAnswer(9, "same"), textAnswer(9, "same"))
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSimilarity_UnknownQuestionType_ReturnsZero(t *testing.T) {
	t.Parallel()
	s := newTestScorer()
	q := &model.Question{ID: 3, Type: "checkbox", Weight: 1}
	got := s.Similarity(q, radioAnswer(3, 1), radioAnswer(3, 1))
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// ============================================================================
// bothUnanswered Tests
// ============================================================================

func TestBothUnanswered(t *testing.T) {
	t.Parallel()
	empty := &model.Answer{}
	if !bothUnanswered(radioQuestion(5), empty, empty) {
		t.Error("expected true for two empty radio answers")
	}
	if bothUnanswered(radioQuestion(5), radioAnswer(5, 1), empty) {
		t.Error("expected false when one radio answer has a value")
	}
	if !bothUnanswered(textQuestion(2), textAnswer(2, "missing"), empty) {
		t.Error("expected true when the only text is the missing placeholder")
	}
	if bothUnanswered(textQuestion(2), textAnswer(2, "2024"), empty) {
		t.Error("expected false when one text answer is present")
	}
}
