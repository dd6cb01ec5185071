package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/roomatch/api/internal/model"
)

// NeutralScore is the reserved "no opinion" compatibility value, returned
// whenever two users cannot be compared (missing data, fetch failures,
// zero total weight). It is distinct from a computed low score.
const NeutralScore = 0.5

// scoreBatchWorkers bounds the parallel fan-out of the per-candidate
// scoring fold.
const scoreBatchWorkers = 4

// QuestionnaireSource defines the questionnaire data access needed for
// compatibility scoring.
type QuestionnaireSource interface {
	GetQuestions(ctx context.Context) (map[int]*model.Question, error)
	GetUserAnswers(ctx context.Context, userID string) (map[int]*model.Answer, error)
	GetAnswersForUsers(ctx context.Context, userIDs []string) (map[string]map[int]*model.Answer, error)
}

// CompatibilityService computes weighted questionnaire compatibility
// between users.
type CompatibilityService struct {
	repo   QuestionnaireSource
	scorer *QuestionScorer
	policy ScoringPolicy
}

// CompatibilityServiceConfig holds configuration for the compatibility service
type CompatibilityServiceConfig struct {
	QuestionnaireRepo QuestionnaireSource
	Policy            ScoringPolicy
}

// NewCompatibilityService creates a new compatibility service
func NewCompatibilityService(cfg CompatibilityServiceConfig) *CompatibilityService {
	if cfg.Policy == (ScoringPolicy{}) {
		cfg.Policy = DefaultScoringPolicy()
	}
	return &CompatibilityService{
		repo:   cfg.QuestionnaireRepo,
		scorer: NewQuestionScorer(cfg.Policy),
		policy: cfg.Policy,
	}
}

// Compatibility returns the weighted mean answer similarity in [0, 1]
// between two users. The contract is total: fetch or computation failures
// are logged and degrade to NeutralScore, never an error.
func (s *CompatibilityService) Compatibility(ctx context.Context, userA, userB string) float64 {
	answersA, err := s.repo.GetUserAnswers(ctx, userA)
	if err != nil {
		slog.Error("compatibility: fetching answers failed",
			slog.String("user_id", userA),
			slog.String("error", err.Error()),
		)
		return NeutralScore
	}
	answersB, err := s.repo.GetUserAnswers(ctx, userB)
	if err != nil {
		slog.Error("compatibility: fetching answers failed",
			slog.String("user_id", userB),
			slog.String("error", err.Error()),
		)
		return NeutralScore
	}
	if len(answersA) == 0 || len(answersB) == 0 {
		return NeutralScore
	}

	questions, err := s.repo.GetQuestions(ctx)
	if err != nil {
		slog.Error("compatibility: fetching question metadata failed",
			slog.String("error", err.Error()),
		)
		return NeutralScore
	}

	return s.scoreAnswerMaps(answersA, answersB, questions)
}

// ScoreOwners computes the searcher's compatibility with each listing owner
// in one pass: question metadata is fetched once and owner answer maps are
// batch-fetched, then the pure scoring fold runs across a small worker
// pool. Every owner id is present in the returned map; owners that cannot
// be scored carry NeutralScore.
func (s *CompatibilityService) ScoreOwners(ctx context.Context, searcherID string, ownerIDs []string) map[string]float64 {
	scores := make(map[string]float64, len(ownerIDs))
	for _, id := range ownerIDs {
		scores[id] = NeutralScore
	}
	if len(ownerIDs) == 0 {
		return scores
	}

	searcherAnswers, err := s.repo.GetUserAnswers(ctx, searcherID)
	if err != nil {
		slog.Error("compatibility: fetching searcher answers failed",
			slog.String("user_id", searcherID),
			slog.String("error", err.Error()),
		)
		return scores
	}
	if len(searcherAnswers) == 0 {
		return scores
	}

	questions, err := s.repo.GetQuestions(ctx)
	if err != nil {
		slog.Error("compatibility: fetching question metadata failed",
			slog.String("error", err.Error()),
		)
		return scores
	}

	ownerAnswers, err := s.repo.GetAnswersForUsers(ctx, ownerIDs)
	if err != nil {
		slog.Error("compatibility: batch-fetching owner answers failed",
			slog.Int("owners", len(ownerIDs)),
			slog.String("error", err.Error()),
		)
		return scores
	}

	// Each worker writes to its own index, so no locking is needed.
	out := make([]float64, len(ownerIDs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := scoreBatchWorkers
	if len(ownerIDs) < workers {
		workers = len(ownerIDs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.scoreAnswerMaps(searcherAnswers, ownerAnswers[ownerIDs[i]], questions)
			}
		}()
	}
	for i := range ownerIDs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, id := range ownerIDs {
		scores[id] = out[i]
	}
	return scores
}

// scoreAnswerMaps is the pure weighted fold over commonly answered
// questions. Ids are processed in ascending order for deterministic
// logging and tests; the order does not affect the result.
func (s *CompatibilityService) scoreAnswerMaps(answersA, answersB map[int]*model.Answer, questions map[int]*model.Question) float64 {
	if len(answersA) == 0 || len(answersB) == 0 {
		return NeutralScore
	}

	common := make([]int, 0, len(answersA))
	for id := range answersA {
		if _, ok := answersB[id]; ok {
			common = append(common, id)
		}
	}
	sort.Ints(common)

	var weightedSum, totalWeight float64
	valid := 0
	for _, id := range common {
		if id == s.policy.ReservedQuestionID {
			continue
		}
		question, ok := questions[id]
		if !ok {
			continue
		}
		a := answersA[id]
		b := answersB[id]
		if bothUnanswered(question, a, b) {
			continue
		}

		// Repository parsing defaults an unset weight to 1.0.
		weight := question.Weight
		similarity := s.scorer.Similarity(question, a, b)

		weightedSum += similarity * weight
		totalWeight += weight
		valid++
	}

	if totalWeight == 0 || valid == 0 {
		return NeutralScore
	}
	return clamp01(weightedSum / totalWeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
