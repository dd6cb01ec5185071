package model

import (
	"strings"
	"time"
)

// QuestionType identifies how a question is answered and scored.
type QuestionType string

// Question type constants
const (
	QuestionTypeText  QuestionType = "text"
	QuestionTypeRadio QuestionType = "radio"
)

// Radio answer scale. Radio questions are answered on a 1-5 scale, so the
// largest possible difference between two answers is 4.
const (
	RadioScaleMin = 1
	RadioScaleMax = 5
)

// DefaultQuestionWeight is used when a question has no stored weight.
const DefaultQuestionWeight = 1.0

// Question represents the metadata of a questionnaire question.
type Question struct {
	ID        int          `json:"id"`
	Type      QuestionType `json:"type"`
	Title     string       `json:"title"`
	Weight    float64      `json:"weight"`
	SortOrder int          `json:"sort_order"`
	CreatedOn time.Time    `json:"created_on"`
}

// Answer represents a user's response to a single question. Exactly one of
// Text and Value is meaningful, depending on the question type.
type Answer struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	QuestionID int       `json:"question_id"`
	Text       *string   `json:"text,omitempty"`
	Value      *int      `json:"value,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// TextMissingSentinel is the literal placeholder some clients store for an
// unanswered text question. It is treated the same as an absent response.
const TextMissingSentinel = "missing"

// HasText reports whether the answer carries a meaningful text response.
func (a *Answer) HasText() bool {
	if a == nil || a.Text == nil {
		return false
	}
	t := strings.TrimSpace(*a.Text)
	return t != "" && strings.ToLower(t) != TextMissingSentinel
}

// HasValue reports whether the answer carries a numeric response.
func (a *Answer) HasValue() bool {
	return a != nil && a.Value != nil
}
