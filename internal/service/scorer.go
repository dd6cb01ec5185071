package service

import (
	"strconv"
	"strings"

	"github.com/roomatch/api/internal/model"
)

// ScoringPolicy fixes the per-question special cases of the compatibility
// score. The ids refer to the production questionnaire layout; the zero
// value is not usable, construct via DefaultScoringPolicy or from config.
type ScoringPolicy struct {
	// ReservedQuestionID is excluded from scoring entirely.
	ReservedQuestionID int
	// YearQuestionID holds a year as text and is scored by distance.
	YearQuestionID int
	// CriticalQuestionID is a radio question where disagreement is
	// penalized near-binary instead of linearly.
	CriticalQuestionID int
	// RadioScaleMax is the largest possible difference on the 1-5 scale.
	RadioScaleMax int
}

// DefaultScoringPolicy returns the production scoring policy.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		ReservedQuestionID: 1,
		YearQuestionID:     2,
		CriticalQuestionID: 8,
		RadioScaleMax:      model.RadioScaleMax - model.RadioScaleMin,
	}
}

// QuestionScorer computes the per-question similarity between two users'
// answers. All methods are pure and safe for concurrent use.
type QuestionScorer struct {
	policy ScoringPolicy
}

// NewQuestionScorer creates a new question scorer
func NewQuestionScorer(policy ScoringPolicy) *QuestionScorer {
	if policy.RadioScaleMax <= 0 {
		policy.RadioScaleMax = DefaultScoringPolicy().RadioScaleMax
	}
	return &QuestionScorer{policy: policy}
}

// Similarity returns the similarity in [0, 1] between two answers to the
// same question, dispatched on the question type.
func (s *QuestionScorer) Similarity(question *model.Question, a, b *model.Answer) float64 {
	switch question.Type {
	case model.QuestionTypeText:
		return s.textSimilarity(question.ID, a, b)
	case model.QuestionTypeRadio:
		return s.radioSimilarity(question.ID, a, b)
	}
	return 0
}

func (s *QuestionScorer) textSimilarity(questionID int, a, b *model.Answer) float64 {
	switch questionID {
	case s.policy.ReservedQuestionID:
		// The aggregator skips this question before scoring; returning 0
		// here is a defensive default, not a reachable policy branch.
		return 0
	case s.policy.YearQuestionID:
		return yearSimilarity(a, b)
	}
	// No scoring rule exists for other text questions.
	return 0
}

// yearSimilarity scores the study-year question: both responses must be
// present, equality is perfect, and otherwise the absolute year distance
// maps to a fixed step-down scale.
func yearSimilarity(a, b *model.Answer) float64 {
	if !a.HasText() || !b.HasText() {
		return 0
	}

	ta := strings.TrimSpace(*a.Text)
	tb := strings.TrimSpace(*b.Text)
	if ta == tb {
		return 1
	}

	ya, errA := strconv.Atoi(ta)
	yb, errB := strconv.Atoi(tb)
	if errA != nil || errB != nil {
		return 0
	}

	switch diff := abs(ya - yb); {
	case diff == 0:
		return 1
	case diff == 1:
		return 0.8
	case diff == 2:
		return 0.3
	default:
		return 0
	}
}

func (s *QuestionScorer) radioSimilarity(questionID int, a, b *model.Answer) float64 {
	if !a.HasValue() || !b.HasValue() {
		return 0
	}

	diff := abs(*a.Value - *b.Value)

	// Critical question: small tolerance, steep drop-off. The override
	// must dominate the linear formula.
	if questionID == s.policy.CriticalQuestionID {
		switch {
		case diff == 0:
			return 1
		case diff == 1:
			return 0.3
		default:
			return 0
		}
	}

	sim := 1 - float64(diff)/float64(s.policy.RadioScaleMax)
	if sim < 0 {
		return 0
	}
	return sim
}

// bothUnanswered reports whether neither side has a meaningful answer for
// the question's type. Such questions are skipped by the aggregator rather
// than scored as mismatches.
func bothUnanswered(question *model.Question, a, b *model.Answer) bool {
	switch question.Type {
	case model.QuestionTypeText:
		return !a.HasText() && !b.HasText()
	case model.QuestionTypeRadio:
		return !a.HasValue() && !b.HasValue()
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
