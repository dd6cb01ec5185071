package service

import (
	"context"
	"sort"
	"time"

	"github.com/roomatch/api/internal/metrics"
	"github.com/roomatch/api/internal/model"
)

// CandidateFilter narrows listings to a searcher's preference matches.
type CandidateFilter interface {
	Filter(ctx context.Context, searcherID string) []*model.Listing
}

// OwnerScorer scores a searcher's compatibility against listing owners.
type OwnerScorer interface {
	ScoreOwners(ctx context.Context, searcherID string, ownerIDs []string) map[string]float64
}

// RecommendationService composes preference filtering and compatibility
// scoring into an ordered listing recommendation.
type RecommendationService struct {
	filter       CandidateFilter
	scorer       OwnerScorer
	defaultLimit int
	maxLimit     int
}

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	Filter       CandidateFilter
	Scorer       OwnerScorer
	DefaultLimit int
	MaxLimit     int
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(cfg RecommendationServiceConfig) *RecommendationService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 50
	}
	return &RecommendationService{
		filter:       cfg.Filter,
		scorer:       cfg.Scorer,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

// RecommendListings returns up to limit listings for the searcher, best
// match first. Ties are broken by listing id ascending so the ordering is
// stable across runs. A limit outside (0, maxLimit] falls back to the
// default. The contract is total: failures degrade to an empty slice.
func (s *RecommendationService) RecommendListings(ctx context.Context, searcherID string, limit int) []*model.Listing {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.defaultLimit
	}
	metrics.RecommendationRequests.Inc()

	candidates := dedupeListings(s.filter.Filter(ctx, searcherID))
	if len(candidates) == 0 {
		metrics.EmptyRecommendations.Inc()
		return []*model.Listing{}
	}

	ownerIDs := distinctOwnerIDs(candidates)

	start := time.Now()
	scores := s.scorer.ScoreOwners(ctx, searcherID, ownerIDs)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	sort.Slice(candidates, func(i, j int) bool {
		si := scores[candidates[i].OwnerID]
		sj := scores[candidates[j].OwnerID]
		if si != sj {
			return si > sj
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// dedupeListings drops repeated listing ids, keeping the first occurrence.
func dedupeListings(listings []*model.Listing) []*model.Listing {
	seen := make(map[string]struct{}, len(listings))
	out := make([]*model.Listing, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}

func distinctOwnerIDs(listings []*model.Listing) []string {
	seen := make(map[string]struct{}, len(listings))
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.OwnerID]; ok {
			continue
		}
		seen[l.OwnerID] = struct{}{}
		ids = append(ids, l.OwnerID)
	}
	return ids
}
