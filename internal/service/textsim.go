package service

import (
	"strings"
	"unicode"

	"github.com/roomatch/api/internal/model"
)

// shortSequenceThreshold: below this many characters a word-set comparison
// is meaningless, so short strings fall back to a character-level sequence
// ratio instead of Jaccard word overlap.
const shortSequenceThreshold = 5

// AnswerTextSimilarity compares two optional questionnaire text responses
// and returns a score in [0, 1].
//
// Absence on both sides is not evidence of mismatch, so two missing
// responses score NeutralScore; exactly one missing response scores 0.
// Present responses are lowercased and trimmed: an exact match scores 1,
// short strings are compared by sequence ratio, and longer strings by
// Jaccard similarity over their word sets.
func AnswerTextSimilarity(a, b *string) float64 {
	aMissing := textMissing(a)
	bMissing := textMissing(b)
	if aMissing && bMissing {
		return NeutralScore
	}
	if aMissing || bMissing {
		return 0
	}

	na := strings.ToLower(strings.TrimSpace(*a))
	nb := strings.ToLower(strings.TrimSpace(*b))
	if na == nb {
		return 1
	}

	if len([]rune(na)) < shortSequenceThreshold || len([]rune(nb)) < shortSequenceThreshold {
		return sequenceRatio(na, nb)
	}
	return jaccard(strings.Fields(na), strings.Fields(nb))
}

// FreeTextSimilarity compares two free-text fields (bios, descriptions) and
// returns a score in [0, 1]. Unlike AnswerTextSimilarity, an empty side is
// simply a non-match: there is no neutral sentinel for profile text.
//
// Both inputs are lowercased, stripped of punctuation, and
// whitespace-collapsed before comparison. The result blends the
// character-level sequence ratio with Jaccard word overlap at 0.7/0.3.
func FreeTextSimilarity(a, b string) float64 {
	na := normalizeFreeText(a)
	nb := normalizeFreeText(b)
	if na == "" || nb == "" {
		return 0
	}

	seq := sequenceRatio(na, nb)
	jac := jaccard(strings.Fields(na), strings.Fields(nb))
	return 0.7*seq + 0.3*jac
}

// textMissing reports whether an optional text response is absent, blank,
// or the stored "missing" placeholder.
func textMissing(s *string) bool {
	if s == nil {
		return true
	}
	t := strings.ToLower(strings.TrimSpace(*s))
	return t == "" || t == model.TextMissingSentinel
}

func normalizeFreeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// punctuation and symbols are dropped
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// sequenceRatio returns a longest-common-subsequence ratio in [0, 1]:
// 2*LCS(a,b) / (len(a)+len(b)).
func sequenceRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Single-row LCS dynamic program.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// jaccard returns |A∩B| / |A∪B| over two token lists, 0 when the union is
// empty.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	union := len(setB)
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
